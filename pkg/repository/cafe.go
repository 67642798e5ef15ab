package repository

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/CafeGargoyle/pkg/model"
)

var ErrCafeNotFound = errors.New("cafe not found")

// CafeFields carries the writable cafe columns. Rating is deliberately
// absent: it is owned by the review aggregation, never by callers.
type CafeFields struct {
	Name        string
	Location    string
	ImgURL      string
	CoffeePrice string
	Detail      string
}

type CafeRepository interface {
	ListCafes(ctx context.Context) ([]*model.Cafe, error)
	GetCafeByID(ctx context.Context, cafeID uint) (*model.Cafe, error)
	AddCafe(ctx context.Context, fields CafeFields) (*model.Cafe, error)
	UpdateCafe(ctx context.Context, cafeID uint, fields CafeFields) (*model.Cafe, error)
	DeleteCafe(ctx context.Context, cafeID uint) error
	AddReview(ctx context.Context, cafeID uint, rating float64) (*model.Cafe, error)
}

func (r *Repository) ListCafes(ctx context.Context) ([]*model.Cafe, error) {
	var cafes []*model.Cafe

	result := r.DB.WithContext(ctx).Find(&cafes)
	if result.Error != nil {
		r.Logger.Error("error listing cafes", zap.Error(result.Error))

		return nil, result.Error
	}

	return cafes, nil
}

func (r *Repository) GetCafeByID(ctx context.Context, cafeID uint) (*model.Cafe, error) {
	var cafe model.Cafe

	result := r.DB.WithContext(ctx).First(&cafe, cafeID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCafeNotFound
		}

		return nil, result.Error
	}

	return &cafe, nil
}

func (r *Repository) AddCafe(ctx context.Context, fields CafeFields) (*model.Cafe, error) {
	cafe := model.Cafe{
		Name:        fields.Name,
		Location:    fields.Location,
		ImgURL:      fields.ImgURL,
		CoffeePrice: fields.CoffeePrice,
		Detail:      fields.Detail,
		Rating:      0.0,
	}

	if result := r.DB.WithContext(ctx).Create(&cafe); result.Error != nil {
		return nil, result.Error
	}

	return &cafe, nil
}

func (r *Repository) UpdateCafe(ctx context.Context, cafeID uint, fields CafeFields) (*model.Cafe, error) {
	cafe, err := r.GetCafeByID(ctx, cafeID)
	if err != nil {
		return nil, err
	}

	// Column map rather than a struct update so the rating is never touched.
	result := r.DB.WithContext(ctx).Model(cafe).Updates(map[string]interface{}{
		"name":         fields.Name,
		"location":     fields.Location,
		"img_url":      fields.ImgURL,
		"coffee_price": fields.CoffeePrice,
		"detail":       fields.Detail,
	})
	if result.Error != nil {
		return nil, result.Error
	}

	cafe.Name = fields.Name
	cafe.Location = fields.Location
	cafe.ImgURL = fields.ImgURL
	cafe.CoffeePrice = fields.CoffeePrice
	cafe.Detail = fields.Detail

	return cafe, nil
}

// DeleteCafe removes the cafe and all its reviews in one transaction. A
// missing id is a no-op, not an error.
func (r *Repository) DeleteCafe(ctx context.Context, cafeID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Where("cafe_id = ?", cafeID).Delete(&model.Review{}); result.Error != nil {
			return result.Error
		}

		if result := tx.Delete(&model.Cafe{}, cafeID); result.Error != nil {
			return result.Error
		}

		return nil
	})
}

// AddReview inserts the review and recomputes the cafe's mean rating in the
// same transaction, so a reader never sees the review without the updated
// aggregate.
func (r *Repository) AddReview(ctx context.Context, cafeID uint, rating float64) (*model.Cafe, error) {
	var cafe model.Cafe

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.First(&cafe, cafeID); result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrCafeNotFound
			}

			return result.Error
		}

		review := model.Review{CafeID: cafeID, Rating: rating}
		if result := tx.Create(&review); result.Error != nil {
			return result.Error
		}

		var average float64
		result := tx.Model(&model.Review{}).
			Where("cafe_id = ?", cafeID).
			Select("avg(rating)").
			Scan(&average)
		if result.Error != nil {
			return result.Error
		}

		cafe.Rating = math.Round(average*10) / 10

		return tx.Model(&model.Cafe{}).Where("id = ?", cafeID).Update("rating", cafe.Rating).Error
	})
	if err != nil {
		if !errors.Is(err, ErrCafeNotFound) {
			r.Logger.Error("error adding review", zap.Uint("cafe_id", cafeID), zap.Error(err))
		}

		return nil, err
	}

	return &cafe, nil
}
