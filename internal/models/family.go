package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Family is the highest level of organization in the backend. Budgets,
// categories and savings goals all belong to exactly one family, and
// access to them is decided by family membership.
type Family struct {
	DefaultModel
	Name        string    `json:"name" example:"Doe family"`
	Note        string    `json:"note,omitempty" example:"Our shared household budget"`
	CreatedByID uuid.UUID `json:"createdBy" example:"9b4ff4aa-d2f1-4276-b2b5-4b8a43922a34"` // ID of the user who created the family
	CreatedBy   User      `json:"-"`
}

func (f *Family) BeforeSave(_ *gorm.DB) error {
	f.Name = strings.TrimSpace(f.Name)
	f.Note = strings.TrimSpace(f.Note)

	return nil
}

// CreateFamily creates a family together with an accepted admin membership
// for its creator, so that the creator is a full member from the start.
func CreateFamily(db *gorm.DB, family *Family, creatorID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		family.CreatedByID = creatorID

		err := tx.Create(family).Error
		if err != nil {
			return err
		}

		now := time.Now().In(time.UTC)
		membership := Membership{
			FamilyID:    family.ID,
			UserID:      creatorID,
			Role:        RoleAdmin,
			Status:      StatusAccepted,
			InvitedByID: creatorID,
			InvitedAt:   now,
			RespondedAt: &now,
		}

		return tx.Create(&membership).Error
	})
}

// Invite adds a user to the family as a pending member.
//
// The inviter must be an accepted admin. When the invitee has a rejected
// membership, that row is reset to pending instead of creating a new one,
// so the membership ID stays stable across re-invitations.
func (f Family) Invite(db *gorm.DB, inviterID uuid.UUID, email string) (Membership, error) {
	var membership Membership

	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := AdminMembership(tx, f.ID, inviterID); err != nil {
			return err
		}

		invitee, err := UserByEmail(tx, email)
		if err != nil {
			return err
		}

		var existing Membership
		err = tx.Where(&Membership{FamilyID: f.ID, UserID: invitee.ID}).First(&existing).Error
		if err != nil && !errors.Is(err, ErrResourceNotFound) {
			return err
		}

		if err == nil {
			switch existing.Status {
			case StatusAccepted:
				return ErrAlreadyMember
			case StatusPending:
				return ErrAlreadyInvited
			}

			// Rejected invitations are re-opened on the same row
			existing.Status = StatusPending
			existing.InvitedByID = inviterID
			existing.InvitedAt = time.Now().In(time.UTC)
			existing.RespondedAt = nil

			membership = existing
			return tx.Select("Status", "InvitedByID", "InvitedAt", "RespondedAt").Save(&membership).Error
		}

		membership = Membership{
			FamilyID:    f.ID,
			UserID:      invitee.ID,
			Role:        RoleMember,
			Status:      StatusPending,
			InvitedByID: inviterID,
			InvitedAt:   time.Now().In(time.UTC),
		}

		return tx.Create(&membership).Error
	})

	return membership, err
}

// Members returns the accepted memberships of the family.
func (f Family) Members(db *gorm.DB) ([]Membership, error) {
	var memberships []Membership
	err := db.
		Where(&Membership{FamilyID: f.ID, Status: StatusAccepted}).
		Order("invited_at ASC").
		Find(&memberships).Error

	return memberships, err
}

// Leave removes the accepted membership of a user from the family.
//
// A sole accepted admin cannot leave while other accepted members remain,
// they have to promote someone first. When the leaving user created the
// family and no accepted memberships remain afterwards, the family is
// deleted. The creator rule and the admin-count rule are separate checks
// on purpose: a non-admin creator leaving an otherwise empty family also
// deletes it.
//
// Returns true when the family was deleted.
func (f Family) Leave(db *gorm.DB, userID uuid.UUID) (bool, error) {
	var familyDeleted bool

	err := db.Transaction(func(tx *gorm.DB) error {
		membership, err := AcceptedMembership(tx, f.ID, userID)
		if err != nil {
			return err
		}

		if membership.Role == RoleAdmin {
			admins, err := acceptedCount(tx, f.ID, RoleAdmin)
			if err != nil {
				return err
			}

			if admins <= 1 {
				members, err := acceptedCount(tx, f.ID, "")
				if err != nil {
					return err
				}

				if members > 1 {
					return ErrOnlyAdminLeaving
				}
			}
		}

		// Delete for real so a later re-invitation can create a fresh row
		err = tx.Unscoped().Delete(&membership).Error
		if err != nil {
			return err
		}

		if f.CreatedByID == userID {
			familyDeleted, err = f.deleteIfEmpty(tx)
			return err
		}

		return nil
	})

	return familyDeleted, err
}

// Delete removes the family together with all its memberships. Only the
// creator can delete a family, other members get ErrForbidden.
func (f Family) Delete(db *gorm.DB, actorID uuid.UUID) error {
	if f.CreatedByID != actorID {
		return fmt.Errorf("%w: only the family creator can delete it", ErrForbidden)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Unscoped().Where(&Membership{FamilyID: f.ID}).Delete(&Membership{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&f).Error
	})
}

// deleteIfEmpty deletes the family when no accepted memberships remain.
func (f Family) deleteIfEmpty(db *gorm.DB) (bool, error) {
	members, err := acceptedCount(db, f.ID, "")
	if err != nil {
		return false, err
	}

	if members > 0 {
		return false, nil
	}

	// Pending or rejected invitations to the family go with it
	err = db.Unscoped().Where(&Membership{FamilyID: f.ID}).Delete(&Membership{}).Error
	if err != nil {
		return false, err
	}

	return true, db.Delete(&f).Error
}
