package domain

import (
	"fmt"
	"time"
)

// VehicleSize represents the vehicle size class a bay is rated for
type VehicleSize string

const (
	SizeCompact   VehicleSize = "compact"
	SizeStandard  VehicleSize = "standard"
	SizeLarge     VehicleSize = "large"
	SizeOversized VehicleSize = "oversized"
)

// vehicleSizeRanks порядковые номера классов: compact < standard < large < oversized
var vehicleSizeRanks = map[VehicleSize]int{
	SizeCompact:   1,
	SizeStandard:  2,
	SizeLarge:     3,
	SizeOversized: 4,
}

// ParseVehicleSize валидирует строковое значение класса автомобиля
// Любое значение вне закрытого перечисления считается ошибкой вызывающей стороны
func ParseVehicleSize(s string) (VehicleSize, error) {
	size := VehicleSize(s)
	if _, ok := vehicleSizeRanks[size]; !ok {
		return "", fmt.Errorf("unknown vehicle size %q", s)
	}
	return size, nil
}

// Rank returns the ordinal rank of the size class.
// Неизвестное значение получает ранг oversized, чтобы испорченные данные
// в хранилище оставались максимально ограничивающими
func (s VehicleSize) Rank() int {
	if rank, ok := vehicleSizeRanks[s]; ok {
		return rank
	}
	return vehicleSizeRanks[SizeOversized]
}

// ResourceStatus represents the lifecycle status of a schedulable resource
type ResourceStatus string

const (
	ResourceStatusActive      ResourceStatus = "active"
	ResourceStatusInactive    ResourceStatus = "inactive"
	ResourceStatusMaintenance ResourceStatus = "maintenance"
)

// ResourceType discriminates the two resource variants
type ResourceType string

const (
	ResourceTypeWashBay    ResourceType = "wash_bay"
	ResourceTypeMobileTeam ResourceType = "mobile_team"
)

// ParseResourceType валидирует строковое значение типа ресурса
func ParseResourceType(s string) (ResourceType, error) {
	switch ResourceType(s) {
	case ResourceTypeWashBay:
		return ResourceTypeWashBay, nil
	case ResourceTypeMobileTeam:
		return ResourceTypeMobileTeam, nil
	default:
		return "", fmt.Errorf("unknown resource type %q", s)
	}
}

// ResourceRef identifies a schedulable resource (bay or mobile team)
type ResourceRef struct {
	Type ResourceType
	ID   int64
}

// Bay represents a fixed wash bay
type Bay struct {
	ID             int64
	BayNumber      string // Уникальный номер бокса, определяет порядок first-fit
	MaxVehicleSize VehicleSize
	Equipment      []string
	Latitude       *float64
	Longitude      *float64
	Status         ResourceStatus

	DeletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanAccommodate returns true if the bay accommodates the requested vehicle size.
// Совместимость монотонна: бокс для large принимает compact и standard
func (b *Bay) CanAccommodate(size VehicleSize) bool {
	return size.Rank() <= b.MaxVehicleSize.Rank()
}

// IsActive returns true if the bay is active and not soft-deleted
func (b *Bay) IsActive() bool {
	return b.Status == ResourceStatusActive && b.DeletedAt == nil
}

// MobileTeam represents a mobile wash team with a geographic service area
type MobileTeam struct {
	ID              int64
	TeamName        string
	BaseLatitude    float64
	BaseLongitude   float64
	ServiceRadiusKM float64
	DailyCapacity   int
	Equipment       []string
	Status          ResourceStatus

	DeletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CoversLocation returns true if the team can service the given location:
// команда активна и точка в пределах радиуса обслуживания от базы
func (t *MobileTeam) CoversLocation(lat, lon float64) bool {
	if t.Status != ResourceStatusActive || t.DeletedAt != nil {
		return false
	}
	return HaversineKM(t.BaseLatitude, t.BaseLongitude, lat, lon) <= t.ServiceRadiusKM
}

// IsActive returns true if the team is active and not soft-deleted
func (t *MobileTeam) IsActive() bool {
	return t.Status == ResourceStatusActive && t.DeletedAt == nil
}

// Resource tagged union над двумя вариантами ресурса.
// Правила совместимости вариантов не пересекаются (иерархия размеров против
// гео-радиуса), поэтому общего базового типа нет — только дискриминант и payload
type Resource struct {
	Type ResourceType
	Bay  *Bay
	Team *MobileTeam
}

// Ref returns the reference identifying this resource
func (r *Resource) Ref() ResourceRef {
	switch r.Type {
	case ResourceTypeWashBay:
		return ResourceRef{Type: ResourceTypeWashBay, ID: r.Bay.ID}
	case ResourceTypeMobileTeam:
		return ResourceRef{Type: ResourceTypeMobileTeam, ID: r.Team.ID}
	default:
		return ResourceRef{}
	}
}

// Status returns the lifecycle status of the underlying variant
func (r *Resource) Status() ResourceStatus {
	switch r.Type {
	case ResourceTypeWashBay:
		return r.Bay.Status
	case ResourceTypeMobileTeam:
		return r.Team.Status
	default:
		return ResourceStatusInactive
	}
}
