package item

import (
	"FindNest/domain"
	"FindNest/entities"
	"FindNest/internal/utils"
	"FindNest/internal/utils/mailing"
	"FindNest/internal/utils/storage"
	"FindNest/pkg/user"
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ItemService interface {
		ReportItem(ctx context.Context, req domain.ReportItemRequest, userID string) (domain.ItemResponse, error)
		GetItems(ctx context.Context, q domain.GetItemsQuery) ([]domain.ItemResponse, error)
		GetItemByID(ctx context.Context, id string) (domain.ItemResponse, error)
		ClaimItem(ctx context.Context, id string, req domain.ClaimItemRequest) (domain.ItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest) (domain.ItemResponse, error)
		DeleteItem(ctx context.Context, id string) error
		UploadItemImage(ctx context.Context, image *multipart.FileHeader) (domain.UploadItemImageResponse, error)
		GetDashboardStats(ctx context.Context) (domain.DashboardStatsResponse, error)
	}

	itemService struct {
		itemRepository ItemRepository
		userRepository user.UserRepository
		s3             storage.AwsS3
	}
)

func NewItemService(itemRepository ItemRepository, userRepository user.UserRepository, s3 storage.AwsS3) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		userRepository: userRepository,
		s3:             s3,
	}
}

const dateLayout = "2006-01-02"

func (s *itemService) ReportItem(ctx context.Context, req domain.ReportItemRequest, userID string) (domain.ItemResponse, error) {
	if strings.TrimSpace(req.Item) == "" {
		return domain.ItemResponse{}, fmt.Errorf("%w: item", domain.ErrMissingRequiredField)
	}
	if strings.TrimSpace(req.DateFound) == "" {
		return domain.ItemResponse{}, fmt.Errorf("%w: dateFound", domain.ErrMissingRequiredField)
	}
	if strings.TrimSpace(req.Location) == "" {
		return domain.ItemResponse{}, fmt.Errorf("%w: location", domain.ErrMissingRequiredField)
	}
	if strings.TrimSpace(req.Description) == "" {
		return domain.ItemResponse{}, fmt.Errorf("%w: description", domain.ErrMissingRequiredField)
	}

	dateFound, err := time.Parse(dateLayout, req.DateFound)
	if err != nil {
		return domain.ItemResponse{}, domain.ErrInvalidDateFound
	}

	if err := validateImageURLs(req.ImageURLs, true); err != nil {
		return domain.ItemResponse{}, err
	}

	category := req.Category
	if category == "" {
		category = domain.CategoryOther
	}
	if !domain.IsValidCategory(category) {
		return domain.ItemResponse{}, domain.ErrInvalidCategory
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ItemResponse{}, domain.ErrParseUUID
	}

	item := &entities.Item{
		ID:          uuid.New(),
		UserID:      userUUID,
		Item:        req.Item,
		Slug:        makeSlug(req.Item),
		DateFound:   dateFound,
		Location:    req.Location,
		Description: req.Description,
		Category:    category,
		ImageURLs:   req.ImageURLs,
		Status:      domain.ItemStatusAvailable,
	}

	if err := s.itemRepository.AddItem(ctx, item); err != nil {
		return domain.ItemResponse{}, err
	}

	return toItemResponse(item), nil
}

func (s *itemService) GetItems(ctx context.Context, q domain.GetItemsQuery) ([]domain.ItemResponse, error) {
	if q.StartIndex < 0 {
		q.StartIndex = 0
	}
	if q.Limit <= 0 {
		q.Limit = 9
	}
	if q.Order != "asc" {
		q.Order = "desc"
	}

	items, err := s.itemRepository.GetItems(ctx, q)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toItemResponse(item))
	}
	return response, nil
}

func (s *itemService) GetItemByID(ctx context.Context, id string) (domain.ItemResponse, error) {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ItemResponse{}, domain.ErrItemNotFound
		}
		return domain.ItemResponse{}, err
	}
	return toItemResponse(item), nil
}

func (s *itemService) ClaimItem(ctx context.Context, id string, req domain.ClaimItemRequest) (domain.ItemResponse, error) {
	claimantName := strings.TrimSpace(req.Name)
	if claimantName == "" {
		return domain.ItemResponse{}, domain.ErrInvalidClaimantName
	}

	claimedDate, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return domain.ItemResponse{}, domain.ErrInvalidClaimDate
	}

	rows, err := s.itemRepository.ClaimItem(ctx, id, claimantName, claimedDate)
	if err != nil {
		return domain.ItemResponse{}, err
	}
	if rows == 0 {
		// The guard did not fire: either the item does not exist or it has
		// already been claimed.
		if _, err := s.itemRepository.GetItemByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ItemResponse{}, domain.ErrItemNotFound
			}
			return domain.ItemResponse{}, err
		}
		return domain.ItemResponse{}, domain.ErrItemAlreadyClaimed
	}

	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		return domain.ItemResponse{}, err
	}

	s.notifyReporter(item, claimantName, claimedDate)

	return toItemResponse(item), nil
}

// notifyReporter emails the reporting user that their item has been claimed.
// Best effort: failures are logged and never surfaced to the claimant.
func (s *itemService) notifyReporter(item *entities.Item, claimantName string, claimedDate time.Time) {
	if utils.GetConfig("SMTP_HOST") == "" {
		return
	}

	go func() {
		reporter, err := s.userRepository.GetUserByID(context.Background(), item.UserID.String())
		if err != nil {
			log.Printf("claim notification: reporter lookup failed: %v", err)
			return
		}

		body := mailing.ClaimNotificationBody(item.Item, claimantName, claimedDate.Format(dateLayout))
		if err := mailing.SendMail(reporter.Email, "Your reported item has been claimed", body); err != nil {
			log.Printf("claim notification: send failed: %v", err)
		}
	}()
}

func (s *itemService) UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest) (domain.ItemResponse, error) {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ItemResponse{}, domain.ErrItemNotFound
		}
		return domain.ItemResponse{}, err
	}

	if req.Item != "" {
		item.Item = req.Item
		item.Slug = makeSlug(req.Item)
	}

	if req.DateFound != "" {
		dateFound, err := time.Parse(dateLayout, req.DateFound)
		if err != nil {
			return domain.ItemResponse{}, domain.ErrInvalidDateFound
		}
		item.DateFound = dateFound
	}

	if req.Location != "" {
		item.Location = req.Location
	}

	if req.Description != "" {
		item.Description = req.Description
	}

	if req.Category != "" {
		if !domain.IsValidCategory(req.Category) {
			return domain.ItemResponse{}, domain.ErrInvalidCategory
		}
		item.Category = req.Category
	}

	if len(req.ImageURLs) > 0 {
		if err := validateImageURLs(req.ImageURLs, false); err != nil {
			return domain.ItemResponse{}, err
		}
		item.ImageURLs = req.ImageURLs
	}

	if err := s.itemRepository.UpdateItem(ctx, item); err != nil {
		return domain.ItemResponse{}, err
	}

	return toItemResponse(item), nil
}

func (s *itemService) DeleteItem(ctx context.Context, id string) error {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	// Best effort: images hosted in our bucket are removed, but a failed
	// object delete never blocks removing the record.
	for _, link := range item.ImageURLs {
		objectKey := s.s3.GetObjectKeyFromLink(link)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.itemRepository.DeleteItem(ctx, id)
}

func (s *itemService) UploadItemImage(ctx context.Context, image *multipart.FileHeader) (domain.UploadItemImageResponse, error) {
	fileName := fmt.Sprintf("item-image-%s", uuid.New().String())
	objectKey, err := s.s3.UploadFile(fileName, image, "items", storage.AllowImage...)
	if err != nil {
		return domain.UploadItemImageResponse{}, err
	}

	return domain.UploadItemImageResponse{
		ImageURL: s.s3.GetPublicLinkKey(objectKey),
	}, nil
}

func (s *itemService) GetDashboardStats(ctx context.Context) (domain.DashboardStatsResponse, error) {
	return s.itemRepository.GetDashboardStats(ctx)
}

func validateImageURLs(imageURLs []string, required bool) error {
	if required && len(imageURLs) == 0 {
		return fmt.Errorf("%w: imageUrls", domain.ErrMissingRequiredField)
	}
	if len(imageURLs) > domain.MaxItemImages {
		return domain.ErrTooManyImages
	}
	for _, raw := range imageURLs {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: %s", domain.ErrInvalidImageURL, raw)
		}
	}
	return nil
}

// makeSlug derives the URL-safe lookup key from an item name: lowercased,
// spaces to hyphens, everything else non-alphanumeric stripped.
func makeSlug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-':
			b.WriteByte('-')
		}
	}
	slug := b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}

func toItemResponse(item *entities.Item) domain.ItemResponse {
	return domain.ItemResponse{
		ID:           item.ID.String(),
		UserID:       item.UserID.String(),
		Item:         item.Item,
		Slug:         item.Slug,
		DateFound:    item.DateFound,
		Location:     item.Location,
		Description:  item.Description,
		Category:     item.Category,
		ImageURLs:    item.ImageURLs,
		Status:       item.Status,
		ClaimantName: item.ClaimantName,
		ClaimedDate:  item.ClaimedDate,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}
