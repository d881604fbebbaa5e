package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"mtaanimarket/internal/domain/entity"
	"mtaanimarket/internal/domain/repository"
	"mtaanimarket/pkg/errors"
)

type firestoreContactRepository struct {
	client *firestore.Client
}

func NewFirestoreContactRepository(client *firestore.Client) repository.ContactRepository {
	return &firestoreContactRepository{
		client: client,
	}
}

func (r *firestoreContactRepository) Create(ctx context.Context, contact *entity.WhatsAppContact) error {
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	if contact.ContactTime.IsZero() {
		contact.ContactTime = time.Now()
	}

	_, err := r.client.Collection("whatsapp_contacts").Doc(contact.ID).Set(ctx, contact)
	if err != nil {
		return errors.Internal("Failed to create contact record", err)
	}

	return nil
}

func (r *firestoreContactRepository) GetByID(ctx context.Context, id string) (*entity.WhatsAppContact, error) {
	doc, err := r.client.Collection("whatsapp_contacts").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Contact record", err)
		}
		return nil, errors.Internal("Failed to get contact record", err)
	}

	var contact entity.WhatsAppContact
	if err := doc.DataTo(&contact); err != nil {
		return nil, errors.Internal("Failed to parse contact data", err)
	}

	return &contact, nil
}

func (r *firestoreContactRepository) Update(ctx context.Context, contact *entity.WhatsAppContact) error {
	_, err := r.client.Collection("whatsapp_contacts").Doc(contact.ID).Set(ctx, contact)
	if err != nil {
		return errors.Internal("Failed to update contact record", err)
	}

	return nil
}

func (r *firestoreContactRepository) ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*entity.WhatsAppContact, int64, error) {
	query := r.client.Collection("whatsapp_contacts").
		Where("sellerId", "==", sellerID).
		OrderBy("contactTime", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count contact records", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var contacts []*entity.WhatsAppContact

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate contact records", err)
		}

		var contact entity.WhatsAppContact
		if err := doc.DataTo(&contact); err != nil {
			return nil, 0, errors.Internal("Failed to parse contact data", err)
		}
		contacts = append(contacts, &contact)
	}

	return contacts, total, nil
}

func (r *firestoreContactRepository) SellerResponseStats(ctx context.Context, sellerID string) (int64, int64, float64, error) {
	docs, err := r.client.Collection("whatsapp_contacts").
		Where("sellerId", "==", sellerID).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, 0, 0, errors.Internal("Failed to aggregate contact stats", err)
	}

	var total, responded, secondsSum int64
	for _, doc := range docs {
		var contact entity.WhatsAppContact
		if err := doc.DataTo(&contact); err != nil {
			continue
		}
		total++
		if contact.IsResponded {
			responded++
			secondsSum += contact.ResponseTimeSeconds
		}
	}

	var avg float64
	if responded > 0 {
		avg = float64(secondsSum) / float64(responded)
	}

	return total, responded, avg, nil
}
