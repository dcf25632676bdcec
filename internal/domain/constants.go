package domain

// Order Statuses as sent by the ERP. Values are display text and must match byte for byte.
const (
	StatusPendente            OrderStatus = "Pendente"
	StatusAguardandoPagamento OrderStatus = "Aguardando Pagamento"
	StatusEmAndamento         OrderStatus = "Em andamento"
	StatusAguardandoAprovacao OrderStatus = "Aguardando Aprovação"
	StatusArteOK              OrderStatus = "Arte OK"
	StatusEmProducao          OrderStatus = "Em Produção"
	StatusProcessando         OrderStatus = "Processando"
	StatusExpedicao           OrderStatus = "Expedição"
	StatusEmSeparacao         OrderStatus = "Em separação"
	StatusSeparado            OrderStatus = "Separado"
	StatusEmbalado            OrderStatus = "Embalado"
	StatusEmEntrega           OrderStatus = "Em entrega"
	StatusEnviado             OrderStatus = "Enviado"
	StatusRetirada            OrderStatus = "Retirada"
	StatusEntregue            OrderStatus = "Entregue"
)

// Order Stages, populated only while the order is in production or shipping
const (
	StageDesign      OrderStage = "Design"
	StageImpressao   OrderStage = "Impressão"
	StageSublimacao  OrderStage = "Sublimação"
	StageCorte       OrderStage = "Corte"
	StageCostura     OrderStage = "Costura"
	StageConferencia OrderStage = "Conferência"
	StageExpedicao   OrderStage = "Expedição"
)

// Steps of the customer-facing pipeline
const (
	StepPedido    StepID = "pedido"
	StepAprovacao StepID = "aprovacao"
	StepProducao  StepID = "producao"
	StepExpedicao StepID = "expedicao"
	StepEntrega   StepID = "entrega"
)

// Production sub-steps
const (
	SubStepDesign      SubStepID = "design"
	SubStepImpressao   SubStepID = "impressao"
	SubStepSublimacao  SubStepID = "sublimacao"
	SubStepCorte       SubStepID = "corte"
	SubStepCostura     SubStepID = "costura"
	SubStepConferencia SubStepID = "conferencia"
)

// Step states
const (
	StateCompleted StepState = "completed"
	StateActive    StepState = "active"
	StatePending   StepState = "pending"
)

// How the current step was found
const (
	ResolvedByStatus  Resolution = "status"
	ResolvedByStage   Resolution = "stage"
	ResolvedByDefault Resolution = "default"
)

// User roles
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// List Exports for API

var OrderStatuses = []OrderStatus{
	StatusPendente,
	StatusAguardandoPagamento,
	StatusEmAndamento,
	StatusAguardandoAprovacao,
	StatusArteOK,
	StatusEmProducao,
	StatusProcessando,
	StatusExpedicao,
	StatusEmSeparacao,
	StatusSeparado,
	StatusEmbalado,
	StatusEmEntrega,
	StatusEnviado,
	StatusRetirada,
	StatusEntregue,
}

// ProductionStages are the stages that place an order inside Produção, in order.
var ProductionStages = []OrderStage{
	StageDesign,
	StageImpressao,
	StageSublimacao,
	StageCorte,
	StageCostura,
	StageConferencia,
}

var OrderStages = append(append([]OrderStage{}, ProductionStages...), StageExpedicao)

var StepIDs = []StepID{
	StepPedido,
	StepAprovacao,
	StepProducao,
	StepExpedicao,
	StepEntrega,
}

var SubStepIDs = []SubStepID{
	SubStepDesign,
	SubStepImpressao,
	SubStepSublimacao,
	SubStepCorte,
	SubStepCostura,
	SubStepConferencia,
}
