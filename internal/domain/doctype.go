package domain

// DocType descreve uma tabela de documentos do ERP consultada pelo relatório
type DocType struct {
	Name       string
	DateField  string
	Status     Condition
	ItemTable  string
	Dimensions []Dimension
}

// Table retorna o nome físico da tabela no banco do ERP
func (d DocType) Table() string {
	return "tab" + d.Name
}

var submitted = Equals{Column: "docstatus", Value: 1}

var (
	SalesInvoice = DocType{
		Name:      "Sales Invoice",
		DateField: "posting_date",
		Status:    submitted,
		ItemTable: "Sales Invoice Item",
		Dimensions: []Dimension{
			DimensionCostCenter, DimensionBranch, DimensionProject, DimensionCustomerGroup, DimensionItemGroup,
		},
	}

	SalesOrder = DocType{
		Name:      "Sales Order",
		DateField: "transaction_date",
		Status:    submitted,
		ItemTable: "Sales Order Item",
		Dimensions: []Dimension{
			DimensionCostCenter, DimensionBranch, DimensionProject, DimensionCustomerGroup, DimensionItemGroup,
		},
	}

	DeliveryNote = DocType{
		Name:      "Delivery Note",
		DateField: "posting_date",
		Status:    submitted,
		ItemTable: "Delivery Note Item",
		Dimensions: []Dimension{
			DimensionCostCenter, DimensionBranch, DimensionProject, DimensionCustomerGroup, DimensionItemGroup,
		},
	}

	PurchaseInvoice = DocType{
		Name:      "Purchase Invoice",
		DateField: "posting_date",
		Status:    submitted,
		ItemTable: "Purchase Invoice Item",
		Dimensions: []Dimension{
			DimensionCostCenter, DimensionBranch, DimensionProject, DimensionSupplierGroup, DimensionItemGroup,
		},
	}

	GLEntry = DocType{
		Name:       "GL Entry",
		DateField:  "posting_date",
		Status:     Equals{Column: "is_cancelled", Value: 0},
		Dimensions: []Dimension{DimensionCostCenter, DimensionProject},
	}

	SalarySlip = DocType{
		Name:      "Salary Slip",
		DateField: "posting_date",
		Status:    submitted,
	}
)
