package model

import "time"

// City is a carrier delivery city reference.
type City struct {
	Ref  string `json:"deliveryCity"`
	Name string `json:"present"`
}

// Warehouse is a carrier pickup point within a city.
type Warehouse struct {
	ID          string `json:"id"`
	CityRef     string `json:"cityRef"`
	Number      int    `json:"number"`
	Description string `json:"description"`
}

// ContactPerson is an entry from the carrier contact directory.
type ContactPerson struct {
	Ref        string `json:"ref"`
	LastName   string `json:"lastName"`
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName"`
	Phone      string `json:"phones"`
}

// CurrentSyncStatus describes the carrier directory sync currently visible
// to the operator, including whether a new run may be triggered.
type CurrentSyncStatus struct {
	ID                  string     `json:"id"`
	Status              SyncStatus `json:"status"`
	IsInProgress        bool       `json:"isInProgress"`
	CanTriggerSync      bool       `json:"canTriggerSync"`
	StartedAt           *time.Time `json:"startedAt,omitempty"`
	CompletedAt         *time.Time `json:"completedAt,omitempty"`
	APIRequestedRecords int        `json:"apiRequestedRecords"`
	DBInsertedRecords   int        `json:"dbInsertedRecords"`
	DurationSeconds     int        `json:"durationSeconds"`
	ErrorMessage        string     `json:"errorMessage"`
	TriggeredBy         string     `json:"triggeredBy"`
	TriggeredByUsername string     `json:"triggeredByUsername"`
}

// SyncRecord is one historical carrier directory sync run.
type SyncRecord struct {
	ID                  string     `json:"id"`
	SyncType            SyncType   `json:"syncType"`
	Status              SyncStatus `json:"status"`
	StartedAt           *time.Time `json:"startedAt,omitempty"`
	CompletedAt         *time.Time `json:"completedAt,omitempty"`
	APIRequestedRecords int        `json:"apiRequestedRecords"`
	DBInsertedRecords   int        `json:"dbInsertedRecords"`
	ErrorMessage        string     `json:"errorMessage"`
	TriggeredBy         string     `json:"triggeredBy"`
	TriggeredByUsername string     `json:"triggeredByUsername"`
}

// SyncHistoryResponse wraps a page of sync records.
type SyncHistoryResponse struct {
	Records []SyncRecord `json:"records"`
}
