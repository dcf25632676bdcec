package domain

// OrderStatus is the coarse lifecycle state of an order.
type OrderStatus string

// OrderStage is the production sub-phase, empty outside production/shipping.
type OrderStage string

// StepID identifies one of the five fixed pipeline steps.
type StepID string

// SubStepID identifies one of the production sub-steps.
type SubStepID string

// StepState is derived on every resolution, never stored.
type StepState string

// Resolution records which input decided the current step.
type Resolution string

type SubStepProgress struct {
	SubStep SubStepID `json:"subStep"`
	Label   string    `json:"label"`
	State   StepState `json:"state"`
}

type StepProgress struct {
	Step     StepID            `json:"step"`
	Label    string            `json:"label"`
	State    StepState         `json:"state"`
	SubSteps []SubStepProgress `json:"subSteps,omitempty"`
}

// Progress is the resolved step list for one (status, stage) pair.
type Progress struct {
	Status         OrderStatus    `json:"status"`
	Stage          OrderStage     `json:"stage,omitempty"`
	Steps          []StepProgress `json:"steps"`
	CurrentStep    StepID         `json:"currentStep"`
	CurrentSubStep *SubStepID     `json:"currentSubStep"`
	ResolvedBy     Resolution     `json:"resolvedBy"`
	Delivered      bool           `json:"delivered"`
}

// ProgressRecorder observes every resolution served to a customer.
type ProgressRecorder interface {
	ObserveProgress(p Progress)
}
