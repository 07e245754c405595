// internal/types/types.go
package types

// EntityID — дескриптор сущности в реестре ECS. Ноль означает «нет сущности».
type EntityID uint32
