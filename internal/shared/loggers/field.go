package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"
	FieldHttpRoute  = "http_route"
	FieldHttpQuery  = "http_query"
	FieldBytes      = "bytes"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldPartitionId  = "partition_id"
	FieldRestaurantID = "restaurant_id"
	FieldBatchID      = "batch_id"
	FieldQuery        = "query"
	FieldEventID      = "event_id"
	FieldEventCount   = "event_count"
)
