package http

import (
	"time"

	itemHttp "github.com/nekogravitycat/share-it-backend/internal/item/http"
	"github.com/nekogravitycat/share-it-backend/internal/request"
)

type CreateRequestBody struct {
	Description string `json:"description" binding:"required"`
}

type RequesterResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RequestResponse struct {
	ID          string                  `json:"id"`
	Description string                  `json:"description"`
	Requester   RequesterResponse       `json:"requester"`
	CreatedAt   time.Time               `json:"created_at"`
	Items       []itemHttp.ItemResponse `json:"items"`
}

func NewRequestResponse(r *request.Request) RequestResponse {
	return RequestResponse{
		ID:          r.ID,
		Description: r.Description,
		Requester:   RequesterResponse{ID: r.RequesterID, Name: r.RequesterName},
		CreatedAt:   r.CreatedAt,
		Items:       itemHttp.NewItemResponses(r.Items),
	}
}

func NewRequestResponses(requests []*request.Request) []RequestResponse {
	out := make([]RequestResponse, len(requests))
	for i, r := range requests {
		out[i] = NewRequestResponse(r)
	}
	return out
}
