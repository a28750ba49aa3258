package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CapacityService/pkg/ptr"
)

func TestParseVehicleSize(t *testing.T) {
	for _, valid := range []string{"compact", "standard", "large", "oversized"} {
		size, err := ParseVehicleSize(valid)
		require.NoError(t, err)
		assert.Equal(t, VehicleSize(valid), size)
	}

	for _, invalid := range []string{"", "huge", "COMPACT", "tiny"} {
		_, err := ParseVehicleSize(invalid)
		assert.Error(t, err, "size %q must be rejected", invalid)
	}
}

func TestVehicleSize_RankOrdering(t *testing.T) {
	// Иерархия строго монотонна: compact < standard < large < oversized
	ordered := []VehicleSize{SizeCompact, SizeStandard, SizeLarge, SizeOversized}
	for i := 1; i < len(ordered); i++ {
		assert.Less(t, ordered[i-1].Rank(), ordered[i].Rank())
	}
}

func TestBay_CanAccommodate(t *testing.T) {
	tests := []struct {
		name     string
		bayMax   VehicleSize
		vehicle  VehicleSize
		expected bool
	}{
		{"compact bay takes compact", SizeCompact, SizeCompact, true},
		{"compact bay rejects standard", SizeCompact, SizeStandard, false},
		{"large bay takes compact", SizeLarge, SizeCompact, true},
		{"large bay takes large", SizeLarge, SizeLarge, true},
		{"large bay rejects oversized", SizeLarge, SizeOversized, false},
		{"oversized bay takes everything", SizeOversized, SizeOversized, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bay := Bay{MaxVehicleSize: tt.bayMax}
			assert.Equal(t, tt.expected, bay.CanAccommodate(tt.vehicle))
		})
	}
}

func TestParseResourceType(t *testing.T) {
	rt, err := ParseResourceType("wash_bay")
	require.NoError(t, err)
	assert.Equal(t, ResourceTypeWashBay, rt)

	rt, err = ParseResourceType("mobile_team")
	require.NoError(t, err)
	assert.Equal(t, ResourceTypeMobileTeam, rt)

	_, err = ParseResourceType("garage")
	assert.Error(t, err)
}

func TestBay_IsActive(t *testing.T) {
	now := mustTime(t, "2026-03-10T10:00:00Z")

	assert.True(t, (&Bay{Status: ResourceStatusActive}).IsActive())
	assert.False(t, (&Bay{Status: ResourceStatusMaintenance}).IsActive())
	assert.False(t, (&Bay{Status: ResourceStatusInactive}).IsActive())
	// Мягко удаленный бокс неактивен независимо от статуса
	assert.False(t, (&Bay{Status: ResourceStatusActive, DeletedAt: &now}).IsActive())
}

func TestMobileTeam_CoversLocation(t *testing.T) {
	// База в центре Москвы, радиус 10 км
	team := MobileTeam{
		BaseLatitude:    55.7558,
		BaseLongitude:   37.6173,
		ServiceRadiusKM: 10,
		Status:          ResourceStatusActive,
	}

	// Точка в ~4 км от базы
	assert.True(t, team.CoversLocation(55.7900, 37.6300))

	// Точка в ~40 км от базы
	assert.False(t, team.CoversLocation(56.1000, 37.9000))

	// Неактивная команда не обслуживает даже собственную базу
	inactive := team
	inactive.Status = ResourceStatusMaintenance
	assert.False(t, inactive.CoversLocation(team.BaseLatitude, team.BaseLongitude))
}

func TestResource_Ref(t *testing.T) {
	bay := &Bay{ID: 7, Status: ResourceStatusActive}
	res := Resource{Type: ResourceTypeWashBay, Bay: bay}

	assert.Equal(t, ResourceRef{Type: ResourceTypeWashBay, ID: 7}, res.Ref())
	assert.Equal(t, ResourceStatusActive, res.Status())

	team := &MobileTeam{ID: 3, Status: ResourceStatusMaintenance}
	res = Resource{Type: ResourceTypeMobileTeam, Team: team}

	assert.Equal(t, ResourceRef{Type: ResourceTypeMobileTeam, ID: 3}, res.Ref())
	assert.Equal(t, ResourceStatusMaintenance, res.Status())
}

func TestBay_OptionalCoordinates(t *testing.T) {
	bay := Bay{
		BayNumber:      "01",
		MaxVehicleSize: SizeStandard,
		Latitude:       ptr.Ptr(55.75),
		Longitude:      ptr.Ptr(37.61),
	}

	require.NotNil(t, bay.Latitude)
	require.NotNil(t, bay.Longitude)
	assert.InDelta(t, 55.75, *bay.Latitude, 1e-9)
}
