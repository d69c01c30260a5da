package http

import (
	"time"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Order struct {
	ID              string    `json:"id"`
	TicketID        string    `json:"ticketId"`
	ClientID        string    `json:"clientId"`
	ClientName      string    `json:"clientName"`
	ModelID         string    `json:"modelId"`
	ModelTitle      string    `json:"modelTitle"`
	WorkstationID   *string   `json:"workstationId,omitempty"`
	WorkstationName string    `json:"workstationName,omitempty"`
	Status          string    `json:"status"`
	Date            time.Time `json:"date"`
	Price           *int64    `json:"price,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

type NewOrder struct {
	ClientID string     `json:"clientId"`
	ModelID  string     `json:"modelId"`
	Date     *time.Time `json:"date"`
	Status   string     `json:"status"`
	Price    *int64     `json:"price"`
	Notes    string     `json:"notes"`
}

type CreatedOrder struct {
	ID       string `json:"id"`
	TicketID string `json:"ticketId"`
}

type StatusChange struct {
	Status string `json:"status"`
}

type WorkstationAssignment struct {
	WorkstationID string `json:"workstationId"`
}

type OrderDetails struct {
	Price *int64 `json:"price"`
	Notes string `json:"notes"`
}

type WorkstationOrder struct {
	ID           string       `json:"id"`
	TicketID     string       `json:"ticketId"`
	ClientName   string       `json:"clientName"`
	ClientPhone  string       `json:"clientPhone"`
	Measurements Measurements `json:"measurements"`
	ModelTitle   string       `json:"modelTitle"`
	PatternLink  string       `json:"patternLink,omitempty"`
	Status       string       `json:"status"`
	Date         time.Time    `json:"date"`
	Notes        string       `json:"notes,omitempty"`
}

type Measurements struct {
	Height float64 `json:"height"`
	Chest  float64 `json:"chest"`
	Waist  float64 `json:"waist"`
	Hips   float64 `json:"hips"`
	Inseam float64 `json:"inseam"`
}

type Client struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email,omitempty"`
	Measurements Measurements `json:"measurements"`
	LastSeen     string       `json:"lastSeen"`
	OrderCount   int          `json:"orderCount"`
}

// NewClient registers a client; measurements may be taken later.
type NewClient struct {
	Name         string        `json:"name"`
	Phone        string        `json:"phone"`
	Email        string        `json:"email"`
	Measurements *Measurements `json:"measurements"`
}

type Workstation struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AccessCode string `json:"accessCode"`
	OpenOrders int    `json:"openOrders"`
}

type NewWorkstation struct {
	Name string `json:"name"`
}

type Notification struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
	Read    bool      `json:"read"`
	OrderID *string   `json:"orderId,omitempty"`
}

type NotificationList struct {
	Items  []Notification `json:"items"`
	Unread int            `json:"unread"`
}

type NewNotification struct {
	Message string  `json:"message"`
	OrderID *string `json:"orderId"`
}

type MarkRead struct {
	IDs []string `json:"ids"`
}

type CatalogItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Genre       string   `json:"genre"`
	Event       string   `json:"event"`
	Difficulty  string   `json:"difficulty"`
	Fabric      string   `json:"fabric"`
	Description string   `json:"description"`
	ImageURLs   []string `json:"imageUrls"`
	CoverImage  string   `json:"coverImage"`
	PatternLink string   `json:"patternLink,omitempty"`
}

type NewCatalogItem struct {
	Title       string   `json:"title"`
	Genre       string   `json:"genre"`
	Event       string   `json:"event"`
	Difficulty  string   `json:"difficulty"`
	Fabric      string   `json:"fabric"`
	Description string   `json:"description"`
	ImageURLs   []string `json:"imageUrls"`
	PatternLink string   `json:"patternLink"`
}

type NewPlacement struct {
	ModelID string `json:"modelId"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type Placement struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	DueAt     time.Time `json:"dueAt"`
}

type CancelledPlacements struct {
	Cancelled int `json:"cancelled"`
}

type Login struct {
	Code string `json:"code"`
}

type SessionInfo struct {
	Mode            string `json:"mode"`
	WorkstationID   string `json:"workstationId,omitempty"`
	WorkstationName string `json:"workstationName,omitempty"`
}
