package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Permission       string             `json:"permission" bson:"permission"`
	ActionPermission string             `json:"action_permission" bson:"action_permission"`
	IsListing        int                `json:"is_listing" bson:"is_listing"`
	Status           bool               `json:"status" bson:"status"`
	IsDeleted        bool               `json:"is_deleted" bson:"is_deleted"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}
