/*
	Copyright (c) 2026 gdl90dec authors
	Distributable under the terms of The "BSD New" License
	that can be found in the LICENSE file.

	render.go: human-readable rendering for the enumerated Traffic/Ownship
	Report fields (560-1058-00 Rev A §3.5.1)
*/

package gdl90

// NICType is the 3.5.1.9 Navigation Integrity Category.
type NICType uint8

const (
	NICTypeUnknown                    NICType = 0
	NICTypeLT20NM                     NICType = 1
	NICTypeLT8NM                      NICType = 2
	NICTypeLT4NM                      NICType = 3
	NICTypeLT2NM                      NICType = 4
	NICTypeLT1NM                      NICType = 5
	NICTypeLTp6NM                     NICType = 6
	NICTypeLTp2NM                     NICType = 7
	NICTypeLTp1NM                     NICType = 8
	NICTypeHPLLT75M_VPLLT112M         NICType = 9
	NICTypeHPLLT25M_VPLLT37p5M        NICType = 10
	NICTypeHPLLT7p5M_VPLLT11M         NICType = 11
)

func (n NICType) String() string {
	switch n {
	case NICTypeUnknown:
		return "Unknown"
	case NICTypeLT20NM:
		return "< 20.0 NM"
	case NICTypeLT8NM:
		return "< 8.0 NM"
	case NICTypeLT4NM:
		return "< 4.0 NM"
	case NICTypeLT2NM:
		return "< 2.0 NM"
	case NICTypeLT1NM:
		return "< 1.0 NM"
	case NICTypeLTp6NM:
		return "< 0.6 NM"
	case NICTypeLTp2NM:
		return "< 0.2 NM"
	case NICTypeLTp1NM:
		return "< 0.1 NM"
	case NICTypeHPLLT75M_VPLLT112M:
		return "HPL < 75 m and VPL < 112 m"
	case NICTypeHPLLT25M_VPLLT37p5M:
		return "HPL < 25 m and VPL < 37.5 m"
	case NICTypeHPLLT7p5M_VPLLT11M:
		return "HPL < 7.5 m and VPL < 11 m"
	default:
		return "Unused"
	}
}

// NACPType is the 3.5.1.10 Navigation Accuracy Category for Position.
type NACPType uint8

const (
	NACPTypeUnknown                NACPType = 0
	NACPTypeLT10NM                 NACPType = 1
	NACPTypeLT4NM                  NACPType = 2
	NACPTypeLT2NM                  NACPType = 3
	NACPTypeLT1NM                  NACPType = 4
	NACPTypeLT0p5NM                NACPType = 5
	NACPTypeLT0p3NM                NACPType = 6
	NACPTypeLT0p1NM                NACPType = 7
	NACPTypeLT0p05NM               NACPType = 8
	NACPTypeHFOMLT30M_VFOMLT45M    NACPType = 9
	NACPTypeHFOMLT10M_VFOMLT15M    NACPType = 10
	NACPTypeHFOMLT3M_VFOMLT4M      NACPType = 11
)

func (n NACPType) String() string {
	switch n {
	case NACPTypeUnknown:
		return "Unknown"
	case NACPTypeLT10NM:
		return "< 10.0 NM"
	case NACPTypeLT4NM:
		return "< 4.0 NM"
	case NACPTypeLT2NM:
		return "< 2.0 NM"
	case NACPTypeLT1NM:
		return "< 1.0 NM"
	case NACPTypeLT0p5NM:
		return "< 0.5 NM"
	case NACPTypeLT0p3NM:
		return "< 0.3 NM"
	case NACPTypeLT0p1NM:
		return "< 0.1 NM"
	case NACPTypeLT0p05NM:
		return "< 0.05 NM"
	case NACPTypeHFOMLT30M_VFOMLT45M:
		return "HFOM < 30 m and VFOM < 45 m"
	case NACPTypeHFOMLT10M_VFOMLT15M:
		return "HFOM < 10 m and VFOM < 15 m"
	case NACPTypeHFOMLT3M_VFOMLT4M:
		return "HFOM < 3 m and VFOM < 4 m"
	default:
		return "Unused"
	}
}

// EmitterCategoryType is the 3.5.1.11 Emitter Category.
type EmitterCategoryType uint8

const (
	EmitterCategoryNoAircraftTypeInformation      EmitterCategoryType = 0
	EmitterCategoryLightICAO                      EmitterCategoryType = 1
	EmitterCategorySmall                          EmitterCategoryType = 2
	EmitterCategoryLarge                          EmitterCategoryType = 3
	EmitterCategoryHighVortexLarge                EmitterCategoryType = 4
	EmitterCategoryHeavyICAO                      EmitterCategoryType = 5
	EmitterCategoryHighlyManeuverable             EmitterCategoryType = 6
	EmitterCategoryRotorcraft                     EmitterCategoryType = 7
	EmitterCategoryUnassigned8                    EmitterCategoryType = 8
	EmitterCategoryGliderSailPlane                EmitterCategoryType = 9
	EmitterCategoryLighterThanAir                 EmitterCategoryType = 10
	EmitterCategoryParachutistSkyDiver            EmitterCategoryType = 11
	EmitterCategoryUltraLightHandGliderParaGlider EmitterCategoryType = 12
	EmitterCategoryUnassigned13                   EmitterCategoryType = 13
	EmitterCategoryUnmannedAerialVehicle          EmitterCategoryType = 14
	EmitterCategorySpaceTransAtmosphericVehicle   EmitterCategoryType = 15
	EmitterCategoryUnassigned16                   EmitterCategoryType = 16
	EmitterCategorySurfaceVehicleEmergencyVehicle EmitterCategoryType = 17
	EmitterCategorySurfaceVehicleServiceVehicle   EmitterCategoryType = 18
	EmitterCategoryPointObstacle                  EmitterCategoryType = 19
	EmitterCategoryClusterObstacle                EmitterCategoryType = 20
	EmitterCategoryLineObstacle                   EmitterCategoryType = 21
)

func (e EmitterCategoryType) String() string {
	switch e {
	case EmitterCategoryNoAircraftTypeInformation:
		return "No aircraft type information"
	case EmitterCategoryLightICAO:
		return "Light (ICAO) < 15 500 lbs"
	case EmitterCategorySmall:
		return "Small - 15 500 to 75 000 lbs"
	case EmitterCategoryLarge:
		return "Large - 75 000 to 300 000 lbs"
	case EmitterCategoryHighVortexLarge:
		return "High Vortex Large (e.g., aircraft such as B757)"
	case EmitterCategoryHeavyICAO:
		return "Heavy (ICAO) - > 300 000 lbs"
	case EmitterCategoryHighlyManeuverable:
		return "Highly Maneuverable > 5G acceleration and high speed"
	case EmitterCategoryRotorcraft:
		return "Rotorcraft"
	case EmitterCategoryGliderSailPlane:
		return "Glider/sailplane"
	case EmitterCategoryLighterThanAir:
		return "Lighter than air"
	case EmitterCategoryParachutistSkyDiver:
		return "Parachutist/sky diver"
	case EmitterCategoryUltraLightHandGliderParaGlider:
		return "Ultra light/hang glider/paraglider"
	case EmitterCategoryUnmannedAerialVehicle:
		return "Unmanned aerial vehicle"
	case EmitterCategorySpaceTransAtmosphericVehicle:
		return "Space/transatmospheric vehicle"
	case EmitterCategorySurfaceVehicleEmergencyVehicle:
		return "Surface vehicle, emergency vehicle"
	case EmitterCategorySurfaceVehicleServiceVehicle:
		return "Surface vehicle, service vehicle"
	case EmitterCategoryPointObstacle:
		return "Point Obstacle (includes tethered balloons)"
	case EmitterCategoryClusterObstacle:
		return "Cluster Obstacle"
	case EmitterCategoryLineObstacle:
		return "Line Obstacle"
	case EmitterCategoryUnassigned8, EmitterCategoryUnassigned13, EmitterCategoryUnassigned16:
		return "Unassigned"
	default:
		return "Reserved"
	}
}

func (a AlertStatus) String() string {
	switch a {
	case AlertStatusNoAlert:
		return "No Alert"
	case AlertStatusTrafficAlert:
		return "Traffic Alert"
	default:
		return "Reserved"
	}
}

func (a AddressType) String() string {
	switch a {
	case AddressTypeADSBWithICAO:
		return "ADS-B with ICAO address"
	case AddressTypeADSBSelfAssigned:
		return "ADS-B with Self-assigned address"
	case AddressTypeTISBWithICAO:
		return "TIS-B with ICAO address"
	case AddressTypeTISBWithTrackFileID:
		return "TIS-B with track file ID"
	case AddressTypeSurfaceVehicle:
		return "Surface Vehicle"
	case AddressTypeGroundStationBeacon:
		return "Ground Station Beacon"
	default:
		return "Reserved"
	}
}

func (t TrackHeadingType) String() string {
	switch t {
	case TrackHeadingInvalid:
		return "Invalid"
	case TrackHeadingTrueTrackAngle:
		return "True Track Angle"
	case TrackHeadingHeadingMagnetic:
		return "Heading (Magnetic)"
	case TrackHeadingHeadingTrue:
		return "Heading (True)"
	default:
		return "Reserved"
	}
}

func (e EmergencyPriorityCode) String() string {
	switch e {
	case EmergencyPriorityNoEmergency:
		return "No emergency"
	case EmergencyPriorityGeneralEmergency:
		return "General emergency"
	case EmergencyPriorityMedicalEmergency:
		return "Medical emergency"
	case EmergencyPriorityMinimumFuel:
		return "Minimum fuel"
	case EmergencyPriorityNoCommunication:
		return "No communication"
	case EmergencyPriorityUnlawfulInterference:
		return "Unlawful interference"
	case EmergencyPriorityDownedAircraft:
		return "Downed aircraft"
	default:
		return "Reserved"
	}
}

func (id MessageID) String() string {
	switch id {
	case MessageIDHeartbeat:
		return "Heartbeat"
	case MessageIDInitialization:
		return "Initialization"
	case MessageIDUplinkData:
		return "Uplink Data"
	case MessageIDHeightAboveTerrain:
		return "Height Above Terrain"
	case MessageIDOwnshipReport:
		return "Ownship Report"
	case MessageIDOwnshipGeometricAltitude:
		return "Ownship Geometric Altitude"
	case MessageIDTrafficReport:
		return "Traffic Report"
	case MessageIDBasicReport:
		return "Basic Report"
	case MessageIDLongReport:
		return "Long Report"
	default:
		return "Reserved"
	}
}
