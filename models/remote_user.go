package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RemoteUser mirrors one Xero organisation user. This is the one entity type
// whose stored field names differ from the wire names: the legacy mirror
// renamed them on the way in, and the stored shape is kept for compatibility.
type RemoteUser struct {
	ID primitive.ObjectID `json:"-" bson:"_id,omitempty"`

	GlobalUserID     string   `json:"GlobalUserID" bson:"globalUserID"`
	UserID           string   `json:"UserID" bson:"userID,omitempty"`
	EmailAddress     string   `json:"EmailAddress" bson:"emailAddress,omitempty"`
	FirstName        string   `json:"FirstName" bson:"firstName,omitempty"`
	LastName         string   `json:"LastName" bson:"lastName,omitempty"`
	UpdatedDateUTC   XeroDate `json:"UpdatedDateUTC" bson:"updatedDateUTC"`
	IsSubscriber     bool     `json:"IsSubscriber" bson:"isSubscriber"`
	OrganisationRole string   `json:"OrganisationRole" bson:"organisationRole,omitempty"`

	Extra map[string]interface{} `json:"Extra,omitempty" bson:"Extra,omitempty"`
}
