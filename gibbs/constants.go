package gibbs

// Physical constants of the TEOS-10 formulation. Values are the exact
// literals from the international thermodynamic equation of seawater
// (IOC, SCOR and IAPSO 2010).
const (
	// SSO is the Absolute Salinity of the standard ocean [g/kg].
	SSO = 35.16504
	// Sfac normalizes Absolute Salinity into the reduced variable x2.
	Sfac = 0.0248826675584615
	// CP0 is the fixed "specific heat" relating Conservative Temperature
	// to potential enthalpy [J/(kg K)].
	CP0 = 3991.86795711963
	// Kelvin converts ITS-90 Celsius to absolute temperature.
	Kelvin = 273.15
	// DB2Pascal converts sea pressure in dbar to Pa.
	DB2Pascal = 1e4
	// Gamma is the gradient of gravity with pressure [1/dbar scale].
	Gamma = 2.26e-7
	// EarthRadius is the mean radius used by the distance helper [m].
	EarthRadius = 6371000.0
	// R is the molar gas constant [J/(mol K)].
	R = 8.314472
	// MS is the mole-weighted atomic weight of sea salt [kg/mol].
	MS = 0.0314038218
	// R1 relates the salinity anomaly to Preformed Salinity.
	R1 = 0.35
	// P0 is one standard atmosphere [Pa].
	P0 = 101325.0
	// Z2 is the valence factor of sea salt used for ionic strength.
	Z2 = 1.2452898
)
