package dto


// DraftSlotResponse espacio del carrito de un borrador.
type DraftSlotResponse struct {
	Index       int    `json:"index"`
	EquipmentID string `json:"equipment_id,omitempty"`
	Name        string `json:"name,omitempty"`
	Quantity    int    `json:"quantity"`
}

// DraftResponse estado del borrador con el cálculo al día.
type DraftResponse struct {
	ID     string              `json:"id"`
	Slots  []DraftSlotResponse `json:"slots"`
	Client ClientRequest       `json:"client"`
	Quote  QuoteResponse       `json:"quote"`
}

// SelectEquipmentRequest elige el equipo de un espacio.
type SelectEquipmentRequest struct {
	EquipmentID string `json:"equipment_id" validate:"required"`
}

// QuantityRequest cantidad tal como fue digitada (3, "3", "abc" = 0).
type QuantityRequest struct {
	Quantity TypedQuantity `json:"quantity"`
}

// DraftConfigRequest cambios parciales de configuración; nil = sin cambio.
type DraftConfigRequest struct {
	PaymentMethod    *string      `json:"payment_method" validate:"omitempty,oneof=Boleto Cartao"`
	Location         *string      `json:"location" validate:"omitempty,oneof=SP Outros"`
	BillingDocType   *string      `json:"billing_doc_type" validate:"omitempty,oneof=CPF CNPJ"`
	Condition        *string      `json:"condition" validate:"omitempty,oneof=Normal Especial"`
	InstallmentCount *int         `json:"installment_count" validate:"omitempty,min=1,max=21"`
	Discount         *TypedAmount `json:"discount"`
	Freight          *TypedAmount `json:"freight"`
}

// DownPaymentRequest entrada digitada por el vendedor ("R$ 1.500" = 1500).
type DownPaymentRequest struct {
	Value TypedAmount `json:"value"`
}
