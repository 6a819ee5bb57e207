// File: database/repository/customer/interface.go
package customerRepo

import (
	"context"

	"bookify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CustomerRepository persists customer records. GetByID returns
// (nil, nil) when no customer exists.
type CustomerRepository interface {
	Create(ctx context.Context, c models.Customer) error
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type mongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo constructs a MongoDB CustomerRepository.
func NewMongoCustomerRepo(db *mongo.Database) CustomerRepository {
	return &mongoCustomerRepo{coll: db.Collection("customers")}
}
