package models

// ResourceCategory identifies which managed service a resource came from
type ResourceCategory string

const (
	CategoryComputeInstance ResourceCategory = "compute-instance"
	CategoryDBInstance      ResourceCategory = "relational-db-instance"
	CategoryDBCluster       ResourceCategory = "relational-db-cluster"
	CategoryBucket          ResourceCategory = "object-store-bucket"
	CategoryFunction        ResourceCategory = "function"
	CategoryTable           ResourceCategory = "key-value-table"
)

// ResourceDescriptor represents a single enumerated resource
type ResourceDescriptor struct {
	Category   ResourceCategory
	Identifier string // InstanceId, DBInstanceIdentifier, bucket name, ...
	Status     string // Raw API state, empty when the API reports none
}
