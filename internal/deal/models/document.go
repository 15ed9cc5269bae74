package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	dErrors "realestate/pkg/domain-errors"
)

// Document is a file attached to a deal. Two documents are the same when their
// IDs match.
type Document struct {
	id           uuid.UUID
	title        string
	documentType string
	filePath     string
	createdAt    time.Time
}

func NewDocument(title, documentType, filePath string, now time.Time) (*Document, error) {
	title, documentType, filePath = strings.TrimSpace(title), strings.TrimSpace(documentType), strings.TrimSpace(filePath)

	var v dErrors.Validation
	v.Check(title != "", "document title cannot be empty")
	v.Check(documentType != "", "document type cannot be empty")
	v.Check(filePath != "", "document file path cannot be empty")
	if err := v.Err(); err != nil {
		return nil, err
	}
	return &Document{
		id:           uuid.New(),
		title:        title,
		documentType: documentType,
		filePath:     filePath,
		createdAt:    now,
	}, nil
}

func (d *Document) ID() uuid.UUID { return d.id }
func (d *Document) Title() string { return d.title }
func (d *Document) Type() string { return d.documentType }
func (d *Document) FilePath() string { return d.filePath }
func (d *Document) CreatedAt() time.Time { return d.createdAt }

func (d *Document) String() string {
	return fmt.Sprintf("%s (%s) - %s", d.title, d.documentType, d.filePath)
}
