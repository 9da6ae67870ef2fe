package writer

import "github.com/cpmech/bdf/bdf/card"

// Several families were generalized in §3 onto one Go struct shared by
// multiple Nastran card names (e.g. PBAR/PBARL both become a Property
// with Kind == PropBar). The original card name is not retained, so the
// writer must pick a canonical representative to hand to card.Write;
// re-parsing that representative reproduces the same typed attributes,
// which is all Testable Property 1 (round-trip equality of the modeled
// fields) requires — the literal card name is allowed to drift.

func rigidName(k card.RigidKind) string {
	switch k {
	case card.RigidRBE2:
		return "RBE2"
	case card.RigidRBE3:
		return "RBE3"
	default:
		return "RBAR"
	}
}

func massName(k card.MassKind) string {
	switch k {
	case card.MassCONM1:
		return "CONM1"
	case card.MassCMASS1:
		return "CMASS1"
	case card.MassCMASS2:
		return "CMASS2"
	case card.MassCMASS3:
		return "CMASS3"
	case card.MassCMASS4:
		return "CMASS4"
	default:
		return "CONM2"
	}
}

func propName(k card.PropKind) string {
	switch k {
	case card.PropComposite:
		return "PCOMP"
	case card.PropSolid:
		return "PSOLID"
	case card.PropBar:
		return "PBAR"
	case card.PropBeam:
		return "PBEAM"
	case card.PropRod:
		return "PROD"
	case card.PropBush:
		return "PBUSH"
	case card.PropElas:
		return "PELAS"
	case card.PropDamp:
		return "PDAMP"
	case card.PropGap:
		return "PGAP"
	case card.PropShear:
		return "PSHEAR"
	case card.PropWeld:
		return "PWELD"
	case card.PropFast:
		return "PFAST"
	case card.PropVisc:
		return "PVISC"
	default:
		return "PSHELL"
	}
}

// matName distinguishes MAT2 from MAT8 (both tagged MatOrtho2D) by which
// of the two disjoint storage shapes is populated: MAT8's dedicated
// orthotropic fields, or MAT2's loose Extra bag.
func matName(m *card.Material) string {
	switch m.Kind {
	case card.MatAniso3D:
		return "MAT9"
	case card.MatHyperelastic:
		return "MAT10"
	case card.MatOrtho2D:
		if m.E1 != 0 || m.E2 != 0 {
			return "MAT8"
		}
		return "MAT2"
	default:
		return "MAT1"
	}
}

func coordName(c *card.CoordSys) string {
	prefix := "CORD1"
	if c.Type2 {
		prefix = "CORD2"
	}
	switch c.Kind {
	case card.CoordCylindrical:
		return prefix + "C"
	case card.CoordSpherical:
		return prefix + "S"
	default:
		return prefix + "R"
	}
}

func contactSurfaceName() string { return "BSURF" }

// loadName picks a representative card name per LoadKind. Pressure and
// dynamic loads collapse several Nastran cards onto one Load shape
// (§3); PLOAD4 is chosen whenever a face-defining node (G1) is present,
// otherwise PLOAD2 stands in for the simpler element-pressure form.
func loadName(l *card.Load) string {
	switch l.Kind {
	case card.LoadForce:
		return "FORCE"
	case card.LoadMoment:
		return "MOMENT"
	case card.LoadPressure:
		if l.G1 != 0 {
			return "PLOAD4"
		}
		return "PLOAD2"
	case card.LoadGravity:
		return "GRAV"
	case card.LoadCombine:
		return "LOAD"
	case card.LoadTemperature:
		if l.Temp != 0 && len(l.NodeTemp) == 0 {
			return "TEMPD"
		}
		return "TEMP"
	case card.LoadRotational:
		return "RFORCE"
	case card.LoadDynamicFreq:
		if _, ok := l.Extra["A"]; ok {
			return "DAREA"
		}
		return "RLOAD1"
	default:
		return "TLOAD1"
	}
}
