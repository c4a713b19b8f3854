package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ratio/components"
)

// Ratio returns the gear ratio between a driver and a driven gear.
func Ratio(driverTeeth, drivenTeeth float32) float32 {
	if drivenTeeth == 0 {
		return 1
	}
	return driverTeeth / drivenTeeth
}

// MeshSystem turns driven gears from their driver's speed.
// It must run before SpinSystem so the driver's pre-friction speed is used.
type MeshSystem struct {
	filter   *ecs.Filter3[components.Spin, components.Teeth, components.Mesh]
	spinMap  *ecs.Map[components.Spin]
	teethMap *ecs.Map[components.Teeth]
}

// NewMeshSystem creates a new mesh system.
func NewMeshSystem(w *ecs.World) *MeshSystem {
	return &MeshSystem{
		filter:   ecs.NewFilter3[components.Spin, components.Teeth, components.Mesh](w),
		spinMap:  ecs.NewMap[components.Spin](w),
		teethMap: ecs.NewMap[components.Teeth](w),
	}
}

// Update runs the mesh system.
func (s *MeshSystem) Update() {
	query := s.filter.Query()
	for query.Next() {
		spin, teeth, mesh := query.Get()
		if !s.spinMap.Has(mesh.Driver) || !s.teethMap.Has(mesh.Driver) {
			continue
		}
		driver := s.spinMap.Get(mesh.Driver)
		ratio := Ratio(s.teethMap.Get(mesh.Driver).Count, teeth.Count)
		spin.Rotation += pi32 * (driver.Speed * ratio)
	}
}
