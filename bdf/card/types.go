// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package card defines the typed BDF card variants (§3 of the
// specification) and the name -> family/parser/writer registry (C2) that
// the full parser (C5) and writer (C7) drive.
package card

// Family identifies one of the ~12 top-level entity buckets a card
// belongs to. A card's Family determines which bucket of the model store
// (bdf/model) holds it and, together with the primary id, its identity.
type Family int

// The enumerated families (§3 "Family").
const (
	FamNode Family = iota
	FamElement
	FamRigid
	FamMass
	FamProperty
	FamMaterial
	FamCoord
	FamSPCSet
	FamMPCSet
	FamLoadSet
	FamContact
	FamSet
	FamMethod
	FamTable
	FamParam
	FamCaseControl
	FamPassthrough
)

func (f Family) String() string {
	switch f {
	case FamNode:
		return "node"
	case FamElement:
		return "element"
	case FamRigid:
		return "rigid"
	case FamMass:
		return "mass"
	case FamProperty:
		return "property"
	case FamMaterial:
		return "material"
	case FamCoord:
		return "coord"
	case FamSPCSet:
		return "spc"
	case FamMPCSet:
		return "mpc"
	case FamLoadSet:
		return "load"
	case FamContact:
		return "contact"
	case FamSet:
		return "set"
	case FamMethod:
		return "method"
	case FamTable:
		return "table"
	case FamParam:
		return "param"
	case FamCaseControl:
		return "casecontrol"
	default:
		return "passthrough"
	}
}

// ----------------------------------------------------------------------
// Node (§3 Node)
// ----------------------------------------------------------------------

// NodeKind distinguishes a structural grid point from a scalar point.
type NodeKind int

const (
	Grid NodeKind = iota
	ScalarPoint
)

// Node is a GRID or SPOINT card.
type Node struct {
	ID   int
	Kind NodeKind
	CP   int // coord id of the input (position) frame; 0 = basic
	X    [3]float64
	CD   int // coord id of the output (displacement) frame; 0 = basic
	PS   string
	Seid int
}

// ----------------------------------------------------------------------
// Element (§3 Element)
// ----------------------------------------------------------------------

// ElemType names a structural element's card type.
type ElemType string

// The enumerated structural element types (§3, §4.2).
const (
	CTRIA3 ElemType = "CTRIA3"
	CTRIA6 ElemType = "CTRIA6"
	CQUAD4 ElemType = "CQUAD4"
	CQUAD8 ElemType = "CQUAD8"
	CHEXA  ElemType = "CHEXA"
	CPENTA ElemType = "CPENTA"
	CTETRA ElemType = "CTETRA"
	CBAR   ElemType = "CBAR"
	CBEAM  ElemType = "CBEAM"
	CROD   ElemType = "CROD"
	CONROD ElemType = "CONROD"
	CBUSH  ElemType = "CBUSH"
	CELAS1 ElemType = "CELAS1"
	CELAS2 ElemType = "CELAS2"
	CELAS3 ElemType = "CELAS3"
	CELAS4 ElemType = "CELAS4"
	CDAMP1 ElemType = "CDAMP1"
	CDAMP2 ElemType = "CDAMP2"
	CDAMP3 ElemType = "CDAMP3"
	CDAMP4 ElemType = "CDAMP4"
	CGAP   ElemType = "CGAP"
	CWELD  ElemType = "CWELD"
	CFAST  ElemType = "CFAST"
	CVISC  ElemType = "CVISC"
	CSHEAR ElemType = "CSHEAR"
	PLOTEL ElemType = "PLOTEL"
	CHBDYG ElemType = "CHBDYG" // heat-boundary
)

// NodeCount is the required node-list length for each structural element
// type, used by the full parser to validate field counts and by the
// partition engine's adjacency builder.
var NodeCount = map[ElemType]int{
	CTRIA3: 3, CTRIA6: 6, CQUAD4: 4, CQUAD8: 8,
	CHEXA: 8, CPENTA: 6, CTETRA: 4,
	CBAR: 2, CBEAM: 2, CROD: 2, CONROD: 2,
	CBUSH: 2, CELAS1: 2, CELAS2: 2, CELAS3: 2, CELAS4: 2,
	CDAMP1: 2, CDAMP2: 2, CDAMP3: 2, CDAMP4: 2,
	CGAP: 2, CWELD: 2, CFAST: 2, CVISC: 2,
	CSHEAR: 4, PLOTEL: 2, CHBDYG: 4,
}

// Element is any structural (non-rigid, non-mass) finite element.
type Element struct {
	ID    int
	Type  ElemType
	Nodes []int

	PID int // property id; unused by CONROD
	MID int // material id; used only by CONROD

	// optional orientation auxiliary (bar/beam): either a third node (G0)
	// or an explicit direction vector, plus a coordinate system.
	G0       int
	HasG0    bool
	Orient   [3]float64
	HasOrient bool
	OrientCID int

	// material coord id / angle (shells): integer -> coord id, else angle.
	ThetaMCIDIsInt bool
	ThetaMCIDInt   int
	ThetaMCIDReal  float64

	// kind-specific scalar bag (springs, dampers, gap, bush, weld, fast,
	// visc, conrod NSM, shear thickness, ...).
	Scalars map[string]float64
}

// ----------------------------------------------------------------------
// Rigid element (§3 Rigid element)
// ----------------------------------------------------------------------

type RigidKind int

const (
	RigidRBE2 RigidKind = iota
	RigidRBE3
	RigidRBAR
)

// RBE3Group is one weighted independent-node group of an RBE3.
type RBE3Group struct {
	Weight float64
	DOF    string
	Nodes  []int
}

// RigidElement is an RBE2, RBE3, or RBAR card.
type RigidElement struct {
	ID   int
	Kind RigidKind

	// RBE2
	Indep int
	DOF   string
	Dep   []int

	// RBE3
	RefNode int
	RefDOF  string
	Groups  []RBE3Group

	// RBAR
	NodeA, NodeB int
	DOFA, DOFB   string
}

// ----------------------------------------------------------------------
// Mass element (§3 Mass element)
// ----------------------------------------------------------------------

type MassKind int

const (
	MassCONM2 MassKind = iota
	MassCONM1
	MassCMASS1
	MassCMASS2
	MassCMASS3
	MassCMASS4
)

// MassElement is a CONM1, CONM2, or CMASSn card.
type MassElement struct {
	ID    int
	Kind  MassKind
	Nodes []int // 1 node (CONM1/2), or 1-2 for scalar masses

	Mass   float64
	CID    int
	Offset [3]float64
	I      [6]float64 // I11, I21, I22, I31, I32, I33 (CONM2)

	// CONM1: full symmetric 6x6 mass matrix, upper-triangle row-major.
	Matrix [21]float64
	HasMatrix bool

	PID int // CMASS1/3 property id (PMASS); unused otherwise
}

// ----------------------------------------------------------------------
// Property (§3 Property)
// ----------------------------------------------------------------------

type PropKind int

const (
	PropShell PropKind = iota
	PropComposite
	PropSolid
	PropBar
	PropBeam
	PropRod
	PropBush
	PropElas
	PropDamp
	PropGap
	PropShear
	PropWeld
	PropFast
	PropVisc
)

// Ply is one layer of a composite (PCOMP/PCOMPG) property.
type Ply struct {
	MID       int
	Thickness float64
	Theta     float64
	SOut      bool
}

// Property is any PSHELL/PCOMP/PSOLID/... card.
type Property struct {
	ID   int
	Kind PropKind

	MIDs      []int // one or more material ids (shell plies reuse Plies instead)
	Thickness float64
	NSM       float64
	Offsets   [2]float64 // z1, z2 (shell) or generic offsets

	Plies     []Ply
	Symmetric bool

	MatCID int // solid material-orientation coord id

	// bar/beam/rod section geometry and bush/elas/damp/gap/shear/weld/
	// fast/visc kind-specific scalars share one bag, matching how the
	// original tool keeps per-kind fields as a loose attribute dict.
	Scalars map[string]float64
}

// ----------------------------------------------------------------------
// Material (§3 Material)
// ----------------------------------------------------------------------

type MatKind int

const (
	MatIsotropic MatKind = iota
	MatOrtho2D
	MatAniso3D
	MatHyperelastic
)

// Material is a MAT1/MAT2/MAT8/MAT9/MAT10 card.
type Material struct {
	ID   int
	Kind MatKind

	// isotropic (MAT1)
	E, G, Nu, Rho, Alpha, Tref, GE float64

	// orthotropic-2d (MAT8)
	E1, E2, Nu12, G12, G1Z, G2Z float64
	Xt, Xc, Yt, Yc, S           float64

	// anisotropic-3d (MAT9): upper-triangle of the 6x6 stiffness matrix,
	// 21 unique terms, row-major.
	C [21]float64

	// hyperelastic / other: loose parameter bag.
	Extra map[string]float64
}

// ----------------------------------------------------------------------
// Coordinate system (§3 Coordinate system)
// ----------------------------------------------------------------------

type CoordKind int

const (
	CoordRectangular CoordKind = iota
	CoordCylindrical
	CoordSpherical
)

// CoordSys is a CORD1x or CORD2x card. Id 0 is the immutable basic frame
// and is never stored explicitly.
type CoordSys struct {
	ID   int
	Kind CoordKind

	// CORD2x: three anchor points in the reference frame RID.
	Type2  bool
	RID    int
	A, B, C [3]float64

	// CORD1x: three defining grid ids.
	G1, G2, G3 int
}

// ----------------------------------------------------------------------
// Constraints (§3 Constraint)
// ----------------------------------------------------------------------

// SPC is one single-point constraint entry (node, dof mask, enforced value).
type SPC struct {
	SID      int
	Node     int
	DOF      string
	Enforced float64
}

// SPC1 constrains a list of nodes to the same dof mask with zero value.
type SPC1 struct {
	SID   int
	DOF   string
	Nodes []int
}

// SPCADD unions other SPC/SPC1 set ids into SID.
type SPCADD struct {
	SID  int
	SIDs []int
}

// MPCTerm is one (node, dof, coefficient) term of a multi-point constraint.
type MPCTerm struct {
	Node int
	DOF  string
	Coef float64
}

// MPC is a multi-point constraint equation.
type MPC struct {
	SID   int
	Terms []MPCTerm
}

// MPCADD unions other MPC set ids into SID.
type MPCADD struct {
	SID  int
	SIDs []int
}

// ----------------------------------------------------------------------
// Loads (§3 Load)
// ----------------------------------------------------------------------

type LoadKind int

const (
	LoadForce LoadKind = iota
	LoadMoment
	LoadPressure
	LoadGravity
	LoadCombine
	LoadTemperature
	LoadRotational
	LoadDynamicTime
	LoadDynamicFreq
)

// LoadCombo is one (scale, set-id) term of a LOAD/DLOAD combination card.
type LoadCombo struct {
	Scale float64
	SID   int
}

// Load is a FORCE/MOMENT/PLOAD.../GRAV/LOAD/RFORCE/TEMP.../Rxxxx/Txxxx/
// DAREA/DLOAD card.
type Load struct {
	ID   int
	Kind LoadKind
	SID  int

	// force/moment
	Node  int
	CID   int
	Scale float64
	Dir   [3]float64

	// pressure-on-face (PLOAD2/PLOAD4)
	EIDs     []int
	Pressures [4]float64
	G1, G3, G4 int

	// gravity
	OverallScale float64

	// combine (LOAD/DLOAD)
	OverallFactor float64
	Combo         []LoadCombo

	// temperature field
	Temp     float64
	NodeTemp map[int]float64

	// dynamic / rotational payload, loose bag.
	Extra map[string]float64
}

// ----------------------------------------------------------------------
// Contact (§3 Contact surface / pair)
// ----------------------------------------------------------------------

// ContactSurface (BSURF/BSURFS) references an element list.
type ContactSurface struct {
	ID      int
	ElemIDs []int
}

// ContactPair (BCTSET/BCTADD/BCONP) references a pair of surface ids.
type ContactPair struct {
	ID       int
	SurfA    int
	SurfB    int
	Kind     string
	Friction float64
}

// ----------------------------------------------------------------------
// Set (§3 Set)
// ----------------------------------------------------------------------

// Set is a SET1/SET3 card: an id plus a heterogeneous id list.
type Set struct {
	ID   int
	Kind string // "SET1" or "SET3"
	IDs  []int
}

// ----------------------------------------------------------------------
// Method / table / param (§3)
// ----------------------------------------------------------------------

// Method is an EIGR/EIGRL card.
type Method struct {
	ID     int
	Kind   string
	Params map[string]float64
}

// Table is a TABLED1/TABLEM1 card: paired (x, y) points.
type Table struct {
	ID   int
	Kind string
	X, Y []float64
}

// Param is a PARAM card: a name plus its scalar/string values.
type Param struct {
	Name   string
	Values []string
}

// ----------------------------------------------------------------------
// Case control (§3 Case-control item)
// ----------------------------------------------------------------------

// CaseControlItem is one "KEYWORD = N" or "KEYWORD(opt) = N" line.
type CaseControlItem struct {
	Keyword string
	Opt     string
	Value   int
	Raw     string // verbatim line, used when Value does not parse as an id reference
}
