// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"

	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationRejected = "rejected"
	InvitationCanceled = "canceled"

	UnknownOrganizationName = "Unknown Organization"
)

type Organization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Logo      string    `json:"logo,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Owner struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type OrganizationWithOwner struct {
	Organization
	MemberCount int    `json:"memberCount"`
	Owner       *Owner `json:"owner"`
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Member struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organizationId"`
	UserID         string    `json:"userId"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
	User           User      `json:"user"`
}

type Team struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	OrganizationID string    `json:"organizationId"`
	Password       string    `json:"password,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Public strips the password hash before a team leaves the service
func (t Team) Public() Team {
	t.Password = ""
	return t
}

type TeamMember struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"teamId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type TeamSplit struct {
	Joined    []Team `json:"joined"`
	Available []Team `json:"available"`
}

type Invitation struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organizationId"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	Status         string    `json:"status"`
	InviterID      string    `json:"inviterId"`
	ExpiresAt      time.Time `json:"expiresAt"`
}

type EnrichedInvitation struct {
	Invitation
	OrganizationName string `json:"organizationName"`
	OrganizationSlug string `json:"organizationSlug,omitempty"`
}

type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Exam struct {
	ID             string    `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Description    string    `json:"description,omitempty" db:"description"`
	Date           time.Time `json:"date" db:"date"`
	CreatedBy      string    `json:"createdBy" db:"created_by"`
	OrganizationID string    `json:"organizationId" db:"organization_id"`
	TeamID         string    `json:"teamId,omitempty" db:"team_id"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

type Message struct {
	ID             string    `json:"id" db:"id"`
	Content        string    `json:"content" db:"content"`
	AuthorID       string    `json:"authorId" db:"author_id"`
	AuthorName     string    `json:"authorName" db:"author_name"`
	OrganizationID string    `json:"organizationId" db:"organization_id"`
	TeamID         string    `json:"teamId,omitempty" db:"team_id"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

type File struct {
	ID             string    `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	StorageID      string    `json:"storageId" db:"storage_id"`
	ContentType    string    `json:"contentType" db:"content_type"`
	Size           int64     `json:"size" db:"size"`
	UploadedBy     string    `json:"uploadedBy" db:"uploaded_by"`
	OrganizationID string    `json:"organizationId" db:"organization_id"`
	TeamID         string    `json:"teamId,omitempty" db:"team_id"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	URL            string    `json:"url,omitempty" db:"-"`
}

type UploadURL struct {
	UploadURL string    `json:"uploadUrl"`
	StorageID string    `json:"storageId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type FileURL struct {
	StorageID string `json:"storageId"`
	URL       string `json:"url"`
}

type Group struct {
	ID             string    `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Description    string    `json:"description,omitempty" db:"description"`
	OrganizationID string    `json:"organizationId" db:"organization_id"`
	CreatedBy      string    `json:"createdBy" db:"created_by"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
