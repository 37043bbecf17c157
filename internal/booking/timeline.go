package booking

import "time"

// lastAndNext picks, from bookings ordered by start descending, the most recent
// booking that has ended and the earliest one that has not started yet.
func lastAndNext(bookings []*Booking, now time.Time) (last, next *Booking) {
	for _, b := range bookings {
		if last == nil && b.End.Before(now) {
			last = b
		}
		if b.Start.After(now) {
			next = b
		}
	}
	return last, next
}
