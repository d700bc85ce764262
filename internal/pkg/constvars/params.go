package constvars

const (
	URLParamEntityType = "entityType"
	URLParamEntityID   = "entityId"
)

const (
	URLQueryParamRole           = "role"
	URLQueryParamClinicID       = "clinicId"
	URLQueryParamComplexID      = "complexId"
	URLQueryParamValidateParent = "validateParent"
)
