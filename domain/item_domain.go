package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessReportItem      = "item reported successfully"
	MessageSuccessGetItems        = "items retrieved successfully"
	MessageSuccessGetItemDetails  = "item details retrieved successfully"
	MessageSuccessClaimItem       = "item claimed successfully"
	MessageSuccessUpdateItem      = "item updated successfully"
	MessageSuccessDeleteItem      = "item deleted successfully"
	MessageSuccessUploadItemImage = "item image uploaded successfully"
	MessageSuccessGetDashboard    = "dashboard statistics retrieved successfully"

	MessageFailedReportItem      = "failed to report item"
	MessageFailedGetItems        = "failed to retrieve items"
	MessageFailedGetItemDetails  = "failed to retrieve item details"
	MessageFailedClaimItem       = "failed to claim item"
	MessageFailedUpdateItem      = "failed to update item"
	MessageFailedDeleteItem      = "failed to delete item"
	MessageFailedUploadItemImage = "failed to upload item image"
	MessageFailedGetDashboard    = "failed to retrieve dashboard statistics"

	ErrItemNotFound         = errors.New("item not found")
	ErrItemAlreadyClaimed   = errors.New("item has already been claimed")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidDateFound     = errors.New("invalid date found, expected YYYY-MM-DD")
	ErrInvalidCategory      = errors.New("invalid category")
	ErrInvalidImageURL      = errors.New("invalid image reference")
	ErrTooManyImages        = errors.New("at most 5 images are allowed")
	ErrInvalidClaimantName  = errors.New("claimant name is required")
	ErrInvalidClaimDate     = errors.New("invalid claim date, expected YYYY-MM-DD")
)

// ItemCategories is the fixed set of categories a found item can be filed
// under. A report without a category falls back to "Other".
var ItemCategories = []string{
	"Mobile Phones",
	"Laptops/Tablets",
	"Headphones/Earbuds",
	"Chargers and Cables",
	"Cameras",
	"Electronic Accessories",
	"Textbooks",
	"Notebooks",
	"Stationery Items",
	"Art Supplies",
	"Calculators",
	"Coats and Jackets",
	"Hats and Caps",
	"Scarves and Gloves",
	"Bags and Backpacks",
	"Sunglasses",
	"Jewelry and Watches",
	"Umbrellas",
	"Wallets and Purses",
	"ID Cards and Passports",
	"Keys",
	"Personal Care Items",
	"Sports Gear",
	"Gym Equipment",
	"Bicycles and Skateboards",
	"Musical Instruments",
	"Water Bottles",
	"Lunch Boxes",
	"Toys and Games",
	"Decorative Items",
	"Other",
}

const (
	ItemStatusAvailable = "available"
	ItemStatusClaimed   = "claimed"

	CategoryOther = "Other"

	MaxItemImages = 5
)

func IsValidCategory(category string) bool {
	for _, c := range ItemCategories {
		if c == category {
			return true
		}
	}
	return false
}

type (
	ReportItemRequest struct {
		Item        string   `json:"item" validate:"required"`
		DateFound   string   `json:"dateFound" validate:"required"`
		Location    string   `json:"location" validate:"required"`
		Description string   `json:"description" validate:"required"`
		Category    string   `json:"category" validate:"omitempty"`
		ImageURLs   []string `json:"imageUrls" validate:"required,min=1,max=5"`
	}

	UpdateItemRequest struct {
		Item        string   `json:"item" validate:"omitempty"`
		DateFound   string   `json:"dateFound" validate:"omitempty"`
		Location    string   `json:"location" validate:"omitempty"`
		Description string   `json:"description" validate:"omitempty"`
		Category    string   `json:"category" validate:"omitempty"`
		ImageURLs   []string `json:"imageUrls" validate:"omitempty,max=5"`
	}

	ClaimItemRequest struct {
		Name string `json:"name" validate:"required"`
		Date string `json:"date" validate:"required"`
	}

	// GetItemsQuery carries the composable list filters. Exact filters are
	// AND'd together; SearchTerm matches as a case-insensitive substring of
	// the item name or the description.
	GetItemsQuery struct {
		StartIndex int
		Limit      int
		Order      string
		Item       string
		Category   string
		UserID     string
		SearchTerm string
	}

	ItemResponse struct {
		ID           string     `json:"id"`
		UserID       string     `json:"user_id"`
		Item         string     `json:"item"`
		Slug         string     `json:"slug"`
		DateFound    time.Time  `json:"date_found"`
		Location     string     `json:"location"`
		Description  string     `json:"description"`
		Category     string     `json:"category"`
		ImageURLs    []string   `json:"image_urls"`
		Status       string     `json:"status"`
		ClaimantName *string    `json:"claimant_name,omitempty"`
		ClaimedDate  *time.Time `json:"claimed_date,omitempty"`
		CreatedAt    time.Time  `json:"created_at"`
		UpdatedAt    time.Time  `json:"updated_at"`
	}

	UploadItemImageResponse struct {
		ImageURL string `json:"image_url"`
	}

	CategoryCount struct {
		Category string `json:"category"`
		Count    int64  `json:"count"`
	}

	DashboardStatsResponse struct {
		TotalItems     int64           `json:"total_items"`
		AvailableItems int64           `json:"available_items"`
		ClaimedItems   int64           `json:"claimed_items"`
		ByCategory     []CategoryCount `json:"by_category"`
	}
)
