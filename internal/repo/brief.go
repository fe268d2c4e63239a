package repo

import (
	"errors"
	"hazel-brief-backend/internal/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBriefNotFound = errors.New("Brief does not exist!")
	// surfaced verbatim to the UI
	ErrAlreadyAssigned = errors.New("This brief has already been accepted by another designer.")
)

type BriefRepo struct {
	db *gorm.DB
}

type BriefRepoInterface interface {
	CreateBrief(brief *models.Brief) (uuid.UUID, error)
	GetBriefByID(id uuid.UUID) (*models.Brief, error)
	GetBriefsByStatus(status models.BriefStatus) ([]models.Brief, error)
	AcceptBrief(briefID uuid.UUID, designerID uuid.UUID) (*models.Brief, error)
}

func NewBriefRepository(db *gorm.DB) BriefRepoInterface {
	return &BriefRepo{db: db}
}

// CreateBrief stores a freshly generated brief as open in the pool.
func (r *BriefRepo) CreateBrief(brief *models.Brief) (uuid.UUID, error) {
	id := uuid.New()
	brief.UUID = id
	brief.Status = models.BriefStatusOpen
	brief.DesignerID = nil
	brief.AssignedAt = nil
	brief.CreatedAt = time.Now()
	brief.UpdatedAt = time.Now()
	err := r.db.Create(brief).Error
	return id, err
}

func (r *BriefRepo) GetBriefByID(id uuid.UUID) (*models.Brief, error) {
	var brief models.Brief
	err := r.db.First(&brief, "uuid = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBriefNotFound
	}
	if err != nil {
		return nil, err
	}
	return &brief, nil
}

// GetBriefsByStatus backs the pool view; open briefs, newest first.
func (r *BriefRepo) GetBriefsByStatus(status models.BriefStatus) ([]models.Brief, error) {
	var briefs []models.Brief
	err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&briefs).Error
	return briefs, err
}

// AcceptBrief transitions a brief from open to assigned exactly once.
// The row lock makes the read-check-write a single atomic unit: of two
// concurrent claimers exactly one commits, the other sees the status already
// flipped and gets ErrAlreadyAssigned without writing anything. Losers are
// not retried or queued.
func (r *BriefRepo) AcceptBrief(briefID uuid.UUID, designerID uuid.UUID) (*models.Brief, error) {
	var brief models.Brief

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&brief, "uuid = ?", briefID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBriefNotFound
			}
			return err
		}

		if brief.Status != models.BriefStatusOpen {
			return ErrAlreadyAssigned
		}

		now := time.Now()
		if err := tx.Model(&brief).Updates(map[string]interface{}{
			"status":      models.BriefStatusAssigned,
			"designer_id": designerID,
			"assigned_at": now,
		}).Error; err != nil {
			return err
		}

		brief.Status = models.BriefStatusAssigned
		brief.DesignerID = &designerID
		brief.AssignedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &brief, nil
}
