package entity

// EntityID is a unique identifier for an entity
type EntityID uint32
