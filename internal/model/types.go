package model

import "encoding/json"

// Person identifies a user referenced by a work order (owner, assignee,
// estimator, and so on).
type Person struct {
	Id       string `json:"Id"`
	FullName string `json:"FullName"`
}

// MoneyValue is a monetary amount with its currency.
type MoneyValue struct {
	Value         float64 `json:"Value"`
	OriginalValue float64 `json:"OriginalValue"`
	CurrencyCode  string  `json:"CurrencyCode"`
}

// Margin pairs a cash margin with its percentage.
type Margin struct {
	Cash       MoneyValue `json:"Cash"`
	Percentage float64    `json:"Percentage"`
}

// CustomField is a user-defined field attached to a work order.
type CustomField struct {
	Name  string `json:"Name"`
	Type  int    `json:"Type"`
	Value string `json:"Value"`
}

// Finish describes a finish option applied to a work order.
type Finish struct {
	Id     string `json:"Id"`
	Name   string `json:"Name"`
	Code   string `json:"Code"`
	Number string `json:"Number"`
}

// WorkOrder is the typed shape of a single work order as returned by the
// Innergy projectWorkOrders endpoint. Field names and JSON tags mirror the
// upstream API (PascalCase).
//
// The fetch entrypoint never decodes into this type — its output contract
// is an opaque pass-through of whatever the API returned. WorkOrder exists
// for the human-readable list view, which needs a handful of well-known
// fields for its table columns.
type WorkOrder struct {
	Id                    string        `json:"Id"`
	Number                string        `json:"Number"`
	Name                  string        `json:"Name"`
	Type                  string        `json:"Type"`
	CreatedBy             Person        `json:"CreatedBy"`
	CreatedOn             string        `json:"CreatedOn"`
	Facility              string        `json:"Facility"`
	Outsourced            bool          `json:"Outsourced"`
	Tags                  []string      `json:"Tags"`
	Status                string        `json:"Status"`
	MaterialOnHandDays    int           `json:"MaterialOnHandDays"`
	Step                  string        `json:"Step"`
	StepIndex             int           `json:"StepIndex"`
	StepType              string        `json:"StepType"`
	InvoiceStatus         string        `json:"InvoiceStatus"`
	Owner                 Person        `json:"Owner"`
	Assignees             []Person      `json:"Assignees"`
	Drafters              []Person      `json:"Drafters"`
	Engineers             []Person      `json:"Engineers"`
	Estimators            []Person      `json:"Estimators"`
	SalesPersons          []Person      `json:"SalesPersons"`
	Coordinators          []Person      `json:"Coordinators"`
	Installers            []Person      `json:"Installers"`
	ProjectManager        Person        `json:"ProjectManager"`
	PlannedStartDate      string        `json:"PlannedStartDate"`
	ActualStartDate       string        `json:"ActualStartDate"`
	PlannedCriticalDate   string        `json:"PlannedCriticalDate"`
	MaterialNeededDate    string        `json:"MaterialNeededDate"`
	PlannedEndMonth       string        `json:"PlannedEndMonth"`
	ActualEndDate         string        `json:"ActualEndDate"`
	ActualEndMonth        string        `json:"ActualEndMonth"`
	Instructions          string        `json:"Instructions"`
	EstimatedLaborCost    MoneyValue    `json:"EstimatedLaborCost"`
	EstimatedMaterialCost MoneyValue    `json:"EstimatedMaterialCost"`
	EstimatedCost         MoneyValue    `json:"EstimatedCost"`
	EstimatedHours        string        `json:"EstimatedHours"`
	EstimatedMargin       Margin        `json:"EstimatedMargin"`
	RemainingHours        string        `json:"RemainingHours"`
	PlannedHours          string        `json:"PlannedHours"`
	PlannedLaborCost      MoneyValue    `json:"PlannedLaborCost"`
	LaborGrandTotalPrice  MoneyValue    `json:"LaborGrandTotalPrice"`
	ActualLaborHours      string        `json:"ActualLaborHours"`
	ActualCost            MoneyValue    `json:"ActualCost"`
	ActualMaterialCost    MoneyValue    `json:"ActualMaterialCost"`
	ActualLaborCost       MoneyValue    `json:"ActualLaborCost"`
	ActualExpensesCost    MoneyValue    `json:"ActualExpensesCost"`
	ActualMargin          Margin        `json:"ActualMargin"`
	MarginVariance        MoneyValue    `json:"MarginVariance"`
	GrandTotalPrice       MoneyValue    `json:"GrandTotalPrice"`
	PreSalesTaxPrice      MoneyValue    `json:"PreSalesTaxPrice"`
	SalesTax              MoneyValue    `json:"SalesTax"`
	ExternalIdentifier    string        `json:"ExternalIdentifier"`
	WorkflowName          string        `json:"WorkflowName"`
	ProjectNumber         string        `json:"ProjectNumber"`
	ProjectName           string        `json:"ProjectName"`
	CustomFields          []CustomField `json:"CustomFields"`
	Finishes              []Finish      `json:"Finishes"`
}

// DecodeWorkOrders converts opaque work-order objects into typed WorkOrder
// values. Unknown fields in the raw objects are ignored; a raw item that is
// not a JSON object fails the whole decode.
func DecodeWorkOrders(items []json.RawMessage) ([]WorkOrder, error) {
	orders := make([]WorkOrder, 0, len(items))
	for _, item := range items {
		var wo WorkOrder
		if err := json.Unmarshal(item, &wo); err != nil {
			return nil, WrapRunError(KindParse, "malformed work order in API response", err)
		}
		orders = append(orders, wo)
	}
	return orders, nil
}
