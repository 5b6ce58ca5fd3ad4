package entity

// dispatchTable maps a prototype class name (as classified by the
// prototype index, spec.md §4.B) to the variant decoder responsible for its
// body plus the pre-body-flag category it belongs to (spec.md §4.D "Version
// gates", "V_1_1_51_4 and V_1_1_62_5"). Populated once at package init;
// lookup is a constant-time map access (spec.md §9 "Variant dispatch").
var dispatchTable = map[string]variantEntry{
	"container":          {decodeContainer, catContainer},
	"logistic-container":  {decodeLogisticContainer, catContainer},
	"infinity-container":  {decodeInfinityContainer, catContainer},
	"linked-container":    {decodeLinkedContainer, catContainer},
	"storage-tank":        {decodeStorageTank, catGeneric},

	"transport-belt":   {decodeTransportBelt, catGeneric},
	"underground-belt": {decodeUndergroundBelt, catGeneric},
	"splitter":         {decodeSplitter, catGeneric},
	"loader":           {decodeLoader, catGeneric},
	"loader-1x1":       {decodeLoader, catGeneric},
	"linked-belt":      {decodeLinkedBelt, catGeneric},

	"inserter":      {decodeInserter, catGeneric},
	"electric-pole": {decodeElectricPole, catGeneric},

	"pipe":           {decodePipe, catGeneric},
	"pipe-to-ground": {decodePipeToGround, catGeneric},
	"infinity-pipe":  {decodeInfinityPipe, catGeneric},
	"pump":           {decodePump, catGeneric},
	"heat-pipe":      {decodeHeatPipe, catGeneric},
	"heat-interface": {decodeHeatInterface, catGeneric},

	"straight-rail":     {decodeStraightRail, catGeneric},
	"curved-rail":       {decodeStraightRail, catGeneric},
	"train-stop":        {decodeTrainStop, catGeneric},
	"rail-signal":       {decodeRailSignal, catGeneric},
	"rail-chain-signal": {decodeRailChainSignal, catGeneric},

	"locomotive":      {decodeLocomotive, catRailVehicle},
	"cargo-wagon":     {decodeCargoWagon, catRailVehicle},
	"fluid-wagon":     {decodeFluidWagon, catRailVehicle},
	"artillery-wagon": {decodeArtilleryWagon, catRailVehicle},

	"roboport": {decodeRoboport, catGeneric},
	"lamp":     {decodeLamp, catGeneric},

	"arithmetic-combinator": {decodeArithmeticCombinator, catGeneric},
	"decider-combinator":    {decodeDeciderCombinator, catGeneric},
	"constant-combinator":   {decodeConstantCombinator, catGeneric},
	"power-switch":          {decodePowerSwitch, catGeneric},
	"programmable-speaker":  {decodeProgrammableSpeaker, catGeneric},

	"boiler":                   {decodeBoiler, catGeneric},
	"generator":                {decodeGenerator, catGeneric},
	"burner-generator":         {decodeBurnerGenerator, catGeneric},
	"solar-panel":              {decodeSolarPanel, catGeneric},
	"accumulator":              {decodeAccumulator, catGeneric},
	"reactor":                  {decodeReactor, catGeneric},
	"offshore-pump":            {decodeOffshorePump, catGeneric},
	"electric-energy-interface": {decodeElectricEnergyInterface, catGeneric},

	"furnace":             {decodeFurnace, catContainer},
	"assembling-machine":  {decodeAssemblingMachine, catContainer},
	"lab":                 {decodeLab, catContainer},
	"beacon":              {decodeBeacon, catContainer},
	"mining-drill":        {decodeMiningDrill, catGeneric},
	"rocket-silo":         {decodeRocketSilo, catContainer},

	"land-mine": {decodeLandMine, catLandMine},
	"wall":      {decodeWall, catGeneric},
	"gate":      {decodeGate, catGeneric},

	"ammo-turret":      {decodeCircuitTurret, catTurret},
	"electric-turret":  {decodeCircuitTurret, catTurret},
	"fluid-turret":     {decodeCircuitTurret, catTurret},
	"artillery-turret": {decodeArtilleryTurret, catTurret},
	"radar":            {decodeRadar, catRadar},

	"flying-text": {decodeFlyingText, catGeneric},
}
