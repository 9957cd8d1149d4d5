package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRole is the role of a user within a family.
type MembershipRole string

const (
	RoleAdmin  MembershipRole = "admin"
	RoleMember MembershipRole = "member"
)

// MembershipStatus is the invitation state of a membership.
//
// A pending membership becomes accepted or rejected when the invitee
// responds. A rejected membership can return to pending through
// re-invitation. Accepted memberships only go away by removal or leaving,
// which deletes the row.
type MembershipStatus string

const (
	StatusPending  MembershipStatus = "pending"
	StatusAccepted MembershipStatus = "accepted"
	StatusRejected MembershipStatus = "rejected"
)

// Membership connects a user to a family, carrying their role and the
// state of their invitation.
type Membership struct {
	DefaultModel
	FamilyID    uuid.UUID        `json:"familyId" gorm:"uniqueIndex:membership_family_user" example:"c8431323-3f68-4a8a-b073-2f318f9d2b94"` // ID of the family
	Family      Family           `json:"-"`
	UserID      uuid.UUID        `json:"userId" gorm:"uniqueIndex:membership_family_user" example:"9b4ff4aa-d2f1-4276-b2b5-4b8a43922a34"` // ID of the user
	User        User             `json:"-"`
	Role        MembershipRole   `json:"role" gorm:"default:member" example:"member"`
	Status      MembershipStatus `json:"status" gorm:"default:pending" example:"pending"`
	InvitedByID uuid.UUID        `json:"invitedBy" example:"9b4ff4aa-d2f1-4276-b2b5-4b8a43922a34"` // ID of the user who sent the invitation
	InvitedAt   time.Time        `json:"invitedAt" example:"2024-03-16T16:44:00.271152Z"`
	RespondedAt *time.Time       `json:"respondedAt"` // Set when the invitee accepts or rejects
}

func (m *Membership) BeforeCreate(tx *gorm.DB) error {
	_ = m.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Membership)

	err := tx.First(&Family{}, toSave.FamilyID).Error
	if err != nil {
		return err
	}

	return tx.First(&User{}, toSave.UserID).Error
}

func (m *Membership) BeforeSave(_ *gorm.DB) error {
	if m.Role == "" {
		m.Role = RoleMember
	}

	if m.Status == "" {
		m.Status = StatusPending
	}

	return nil
}

// InvitationDecision is the response of an invitee to a pending invitation.
type InvitationDecision string

const (
	DecisionAccept InvitationDecision = "accept"
	DecisionReject InvitationDecision = "reject"
)

// PendingInvitations returns all pending memberships for a user.
func PendingInvitations(db *gorm.DB, userID uuid.UUID) ([]Membership, error) {
	var memberships []Membership
	err := db.
		Where(&Membership{UserID: userID, Status: StatusPending}).
		Order("invited_at DESC").
		Find(&memberships).Error

	return memberships, err
}

// RespondToInvitation resolves a pending invitation for the user it was
// sent to. Memberships of other users or non-pending memberships are not
// visible to the responder.
func RespondToInvitation(db *gorm.DB, membershipID, userID uuid.UUID, decision InvitationDecision) (Membership, error) {
	if decision != DecisionAccept && decision != DecisionReject {
		return Membership{}, ErrInvalidDecision
	}

	var membership Membership
	err := db.
		Where(&Membership{UserID: userID, Status: StatusPending}).
		First(&membership, "memberships.id = ?", membershipID).Error
	if err != nil {
		return Membership{}, err
	}

	membership.Status = StatusAccepted
	if decision == DecisionReject {
		membership.Status = StatusRejected
	}

	now := time.Now().In(time.UTC)
	membership.RespondedAt = &now

	err = db.Select("Status", "RespondedAt").Save(&membership).Error
	return membership, err
}

// RemoveMember deletes an accepted membership from a family.
//
// The actor must be an accepted admin of the family. Removing the last
// accepted admin is rejected so that the family never ends up with
// accepted members but nobody to manage them.
func RemoveMember(db *gorm.DB, familyID, membershipID, actorID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := AdminMembership(tx, familyID, actorID); err != nil {
			return err
		}

		var target Membership
		err := tx.
			Where(&Membership{FamilyID: familyID, Status: StatusAccepted}).
			First(&target, "memberships.id = ?", membershipID).Error
		if err != nil {
			return err
		}

		if target.Role == RoleAdmin {
			admins, err := acceptedCount(tx, familyID, RoleAdmin)
			if err != nil {
				return err
			}

			if admins <= 1 {
				return ErrLastAdmin
			}
		}

		// Delete for real so a later re-invitation can create a fresh row
		return tx.Unscoped().Delete(&target).Error
	})
}

// PromoteToAdmin sets the role of an accepted member to admin.
// Promotion never decreases the admin count, so no count check is needed.
func PromoteToAdmin(db *gorm.DB, familyID, membershipID, actorID uuid.UUID) (Membership, error) {
	var target Membership

	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := AdminMembership(tx, familyID, actorID); err != nil {
			return err
		}

		err := tx.
			Where(&Membership{FamilyID: familyID, Status: StatusAccepted}).
			First(&target, "memberships.id = ?", membershipID).Error
		if err != nil {
			return err
		}

		if target.Role != RoleMember {
			return ErrNotPromotable
		}

		target.Role = RoleAdmin
		return tx.Select("Role").Save(&target).Error
	})

	return target, err
}

// acceptedCount counts accepted memberships of a family, optionally
// restricted to a role.
func acceptedCount(db *gorm.DB, familyID uuid.UUID, role MembershipRole) (int64, error) {
	var count int64

	q := db.Model(&Membership{}).
		Where(&Membership{FamilyID: familyID, Status: StatusAccepted})
	if role != "" {
		q = q.Where(&Membership{Role: role})
	}

	err := q.Count(&count).Error
	return count, err
}
