package http

import "time"

// Error is the JSON error envelope returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddressRequest is the destination address of a new package.
type AddressRequest struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// GeoPointRequest is an optional latitude/longitude pair.
type GeoPointRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CreatePackageRequest is the body of POST /api/v1/packages.
type CreatePackageRequest struct {
	TrackingNumber string           `json:"tracking_number"`
	RecipientName  string           `json:"recipient_name"`
	Address        AddressRequest   `json:"address"`
	Priority       int              `json:"priority"`
	Destination    *GeoPointRequest `json:"destination,omitempty"`
	WarehouseID    string           `json:"warehouse_id,omitempty"`
	Status         string           `json:"status,omitempty"`
}

// CreatedResponse reports the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// TransitionRequest is the body of POST /api/v1/packages/:id/transition.
type TransitionRequest struct {
	Target string `json:"target"`
	Notes  string `json:"notes,omitempty"`
}

// AssignPackagesRequest is the body of POST /api/v1/assignments/packages.
type AssignPackagesRequest struct {
	DriverID   string   `json:"driver_id"`
	PackageIDs []string `json:"package_ids"`
}

// AssignByAreaRequest is the body of POST /api/v1/assignments/area.
type AssignByAreaRequest struct {
	DriverID string `json:"driver_id"`
	Zip      string `json:"zip,omitempty"`
	City     string `json:"city,omitempty"`
}

// AssignedResponse reports how many packages an assignment touched.
type AssignedResponse struct {
	Assigned int `json:"assigned"`
}

// RunRulesRequest is the body of POST /api/v1/assignments/run.
type RunRulesRequest struct {
	Status string `json:"status,omitempty"`
	DryRun bool   `json:"dry_run,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// RunRulesResponse reports the outcome of a rule-driven assignment run.
type RunRulesResponse struct {
	Assigned int    `json:"assigned"`
	BatchID  string `json:"batch_id"`
	DryRun   bool   `json:"dry_run"`
}

// BatchResponse is one assignment run in the audit log.
type BatchResponse struct {
	ID           string    `json:"id"`
	FilterStatus string    `json:"filter_status,omitempty"`
	FilterZip    string    `json:"filter_zip,omitempty"`
	FilterCity   string    `json:"filter_city,omitempty"`
	Total        int       `json:"total"`
	Assigned     int       `json:"assigned"`
	DryRun       bool      `json:"dry_run"`
	Notes        string    `json:"notes,omitempty"`
	StartedAt    time.Time `json:"started_at"`
	EndedAt      time.Time `json:"ended_at"`
}

// PodPhotoRequest is one proof-of-delivery photo attached to an attempt.
type PodPhotoRequest struct {
	Path      string           `json:"path"`
	Checksum  string           `json:"checksum,omitempty"`
	MimeType  string           `json:"mime_type,omitempty"`
	SizeBytes int64            `json:"size_bytes,omitempty"`
	TakenAt   *time.Time       `json:"taken_at,omitempty"`
	Location  *GeoPointRequest `json:"location,omitempty"`
}

// AttemptRequest is the body of the confirm and fail endpoints. ReasonCode is
// required only when failing. Location is a pointer so an absent "location"
// key is distinguishable from an explicit (0, 0) and can be rejected.
type AttemptRequest struct {
	DriverID         string            `json:"driver_id"`
	HasEditPrivilege bool              `json:"has_edit_privilege,omitempty"`
	ReasonCode       string            `json:"reason_code,omitempty"`
	Location         *GeoPointRequest  `json:"location"`
	Notes            string            `json:"notes,omitempty"`
	Photos           []PodPhotoRequest `json:"photos,omitempty"`
}

// AttemptResponse reports the sequence number the attempt was recorded under.
type AttemptResponse struct {
	AttemptNo int `json:"attempt_no"`
}

// CreateDriverRequest is the body of POST /api/v1/drivers.
type CreateDriverRequest struct {
	Name          string `json:"name"`
	LicenseNumber string `json:"license_number,omitempty"`
}

// CreateRuleRequest is the body of POST /api/v1/rules.
type CreateRuleRequest struct {
	RuleType string `json:"rule_type"`
	Pattern  string `json:"pattern"`
	DriverID string `json:"driver_id"`
	Priority int    `json:"priority"`
}

// HistoryEventResponse is one entry of a package timeline.
type HistoryEventResponse struct {
	ID         string           `json:"id"`
	EventType  string           `json:"event_type"`
	StatusFrom string           `json:"status_from,omitempty"`
	StatusTo   string           `json:"status_to"`
	At         time.Time        `json:"at"`
	DriverID   string           `json:"driver_id,omitempty"`
	DriverName string           `json:"driver_name,omitempty"`
	Location   *GeoPointRequest `json:"location,omitempty"`
	Notes      string           `json:"notes,omitempty"`
}

// ProductivityRowResponse is one driver's metrics in the productivity report.
type ProductivityRowResponse struct {
	DriverID         string     `json:"driver_id"`
	DriverName       string     `json:"driver_name"`
	Total            int        `json:"total"`
	Delivered        int        `json:"delivered"`
	Failed           int        `json:"failed"`
	OutForNow        int        `json:"out_for_now"`
	Attempts         int        `json:"attempts"`
	AvgAttempts      float64    `json:"avg_attempts"`
	SuccessRate      float64    `json:"success_rate"`
	FirstOFDAt       *time.Time `json:"first_ofd_at,omitempty"`
	LastEventAt      *time.Time `json:"last_event_at,omitempty"`
	LastDelivered    *time.Time `json:"last_delivered,omitempty"`
	ProductiveHours  float64    `json:"productive_hours"`
	DeliveredPerHour float64    `json:"delivered_per_hour"`
}

// InventoryRowResponse is one status bucket in the inventory snapshot.
type InventoryRowResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}
