package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "primetravel/internal/models/db_models"
)

type TripRepository interface {
	Create(ctx context.Context, trip *dbm.Trip) error
	// FindByIDAndUser loads a trip with its days and places in display
	// order. Returns (nil, nil) when no owner-scoped row exists.
	FindByIDAndUser(ctx context.Context, tripID, userID uuid.UUID) (*dbm.Trip, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]dbm.Trip, error)
	Save(ctx context.Context, trip *dbm.Trip) error
	// Delete reports whether an owner-scoped row was actually removed.
	Delete(ctx context.Context, tripID, userID uuid.UUID) (bool, error)

	// ReplaceDays wipes and recreates the materialized day/place structure
	// of a trip in one transaction.
	ReplaceDays(ctx context.Context, tripID uuid.UUID, days []dbm.TripDay) error

	CreatePlace(ctx context.Context, place *dbm.TripPlace) error
	SavePlace(ctx context.Context, place *dbm.TripPlace) error
	DeletePlace(ctx context.Context, placeID uuid.UUID) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Create(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) FindByIDAndUser(ctx context.Context, tripID, userID uuid.UUID) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", tripID, userID).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number ASC")
		}).
		Preload("Days.Places", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_index ASC")
		}).
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]dbm.Trip, error) {
	var trips []dbm.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date ASC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) Save(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *tripRepository) Delete(ctx context.Context, tripID, userID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", tripID, userID).
		Delete(&dbm.Trip{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *tripRepository) ReplaceDays(ctx context.Context, tripID uuid.UUID, days []dbm.TripDay) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subDayIDs := tx.Model(&dbm.TripDay{}).
			Select("id").
			Where("trip_id = ?", tripID)

		if err := tx.Where("trip_day_id IN (?)", subDayIDs).
			Delete(&dbm.TripPlace{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", tripID).
			Delete(&dbm.TripDay{}).Error; err != nil {
			return err
		}

		for i := range days {
			days[i].TripID = tripID
			if err := tx.Create(&days[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *tripRepository) CreatePlace(ctx context.Context, place *dbm.TripPlace) error {
	return r.db.WithContext(ctx).Create(place).Error
}

func (r *tripRepository) SavePlace(ctx context.Context, place *dbm.TripPlace) error {
	return r.db.WithContext(ctx).Save(place).Error
}

func (r *tripRepository) DeletePlace(ctx context.Context, placeID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&dbm.TripPlace{}, "id = ?", placeID).Error
}
