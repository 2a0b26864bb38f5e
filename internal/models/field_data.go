package models

import "time"

// FieldData is a marketing visit record for a bank branch
type FieldData struct {
	ID             int       `json:"id"`
	BankName       string    `json:"bank_name"`
	BankArea       string    `json:"bank_area"`
	ManagerName    string    `json:"manager_name"`
	ManagerPhone   string    `json:"manager_phone"`
	ManagerType    string    `json:"manager_type"`
	ExecutiveCode  string    `json:"executive_code"`
	CollectionData string    `json:"collection_data"`
	MarketingID    int       `json:"marketing_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateFieldDataRequest represents the request body for recording field data
type CreateFieldDataRequest struct {
	BankName       string `json:"bankName"`
	BankArea       string `json:"bankArea"`
	ManagerName    string `json:"managerName"`
	ManagerPhone   string `json:"managerPhone"`
	ManagerType    string `json:"managerType"`
	ExecutiveCode  string `json:"executiveCode"`
	CollectionData string `json:"collectionData"`
	MarketingID    int    `json:"marketingId"`
}
