package item

import (
	"FindNest/domain"
	"FindNest/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	ItemRepository interface {
		AddItem(ctx context.Context, item *entities.Item) error
		GetItemByID(ctx context.Context, id string) (*entities.Item, error)
		UpdateItem(ctx context.Context, item *entities.Item) error
		DeleteItem(ctx context.Context, id string) error
		ClaimItem(ctx context.Context, id string, claimantName string, claimedDate time.Time) (int64, error)
		GetItems(ctx context.Context, q domain.GetItemsQuery) ([]*entities.Item, error)
		GetDashboardStats(ctx context.Context) (domain.DashboardStatsResponse, error)
	}

	itemRepository struct {
		db *gorm.DB
	}
)

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) AddItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) GetItemByID(ctx context.Context, id string) (*entities.Item, error) {
	var item entities.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) UpdateItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Item{}).Error
}

// ClaimItem performs the available-to-claimed transition as a single
// conditional update so that two racing claims cannot both win. The number of
// affected rows tells the caller whether the transition happened.
func (r *itemRepository) ClaimItem(ctx context.Context, id string, claimantName string, claimedDate time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entities.Item{}).
		Where("id = ? AND status = ?", id, domain.ItemStatusAvailable).
		Updates(map[string]interface{}{
			"status":        domain.ItemStatusClaimed,
			"claimant_name": claimantName,
			"claimed_date":  claimedDate,
		})
	return res.RowsAffected, res.Error
}

func (r *itemRepository) GetItems(ctx context.Context, q domain.GetItemsQuery) ([]*entities.Item, error) {
	var items []*entities.Item

	query := r.db.WithContext(ctx).Model(&entities.Item{})

	if q.Item != "" {
		query = query.Where("item = ?", q.Item)
	}
	if q.Category != "" {
		query = query.Where("category = ?", q.Category)
	}
	if q.UserID != "" {
		query = query.Where("user_id = ?", q.UserID)
	}
	if q.SearchTerm != "" {
		pattern := "%" + q.SearchTerm + "%"
		query = query.Where("item ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	order := "created_at desc"
	if q.Order == "asc" {
		order = "created_at asc"
	}

	if err := query.Order(order).Offset(q.StartIndex).Limit(q.Limit).Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *itemRepository) GetDashboardStats(ctx context.Context) (domain.DashboardStatsResponse, error) {
	var totalItems, availableItems, claimedItems int64

	if err := r.db.WithContext(ctx).Model(&entities.Item{}).
		Count(&totalItems).Error; err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.Item{}).
		Where("status = ?", domain.ItemStatusAvailable).
		Count(&availableItems).Error; err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.Item{}).
		Where("status = ?", domain.ItemStatusClaimed).
		Count(&claimedItems).Error; err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	var byCategory []domain.CategoryCount
	if err := r.db.WithContext(ctx).Model(&entities.Item{}).
		Select("category, count(*) as count").
		Group("category").
		Order("count desc").
		Scan(&byCategory).Error; err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	return domain.DashboardStatsResponse{
		TotalItems:     totalItems,
		AvailableItems: availableItems,
		ClaimedItems:   claimedItems,
		ByCategory:     byCategory,
	}, nil
}
