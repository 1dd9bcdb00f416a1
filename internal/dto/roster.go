package dto

import "time"

// ScheduleRequest carries one scheduling run's parameters from the CLI
// into the service layer.
type ScheduleRequest struct {
	StaffPath        string        `validate:"required"`
	RequirementsPath string        `validate:"required"`
	OutputBase       string        `validate:"required"`
	MaxSolveTime     time.Duration `validate:"gte=0"`
}

// TermReport is one objective term in the run summary.
type TermReport struct {
	Name     string  `json:"name"`
	Weight   float64 `json:"weight"`
	Raw      float64 `json:"raw"`
	Weighted float64 `json:"weighted"`
}

// RunSummary describes a completed scheduling run.
type RunSummary struct {
	RunID           string             `json:"runId"`
	Status          string             `json:"status"`
	Suboptimal      bool               `json:"suboptimal"`
	Objective       float64            `json:"objective"`
	WallTime        time.Duration      `json:"wallTime"`
	CoveredSlots    int                `json:"coveredSlots"`
	TotalSlots      int                `json:"totalSlots"`
	EmployeeHours   map[string]float64 `json:"employeeHours"`
	DepartmentHours map[string]float64 `json:"departmentHours"`
	Terms           []TermReport       `json:"terms"`
	OutputFiles     []string           `json:"outputFiles"`
}
