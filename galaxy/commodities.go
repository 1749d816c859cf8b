package galaxy

// Commodity names one tradeable good. The set is fixed; ports differ only in
// which goods they buy and sell, as dictated by their class.
type Commodity string

const (
	CommodityOre                Commodity = "ore"
	CommodityOrganics           Commodity = "organics"
	CommodityEquipment          Commodity = "equipment"
	CommodityFuel               Commodity = "fuel"
	CommodityLuxuryGoods        Commodity = "luxury_goods"
	CommodityGourmetFood        Commodity = "gourmet_food"
	CommodityExoticTechnology   Commodity = "exotic_technology"
	CommodityAdvancedComponents Commodity = "advanced_components"
	CommodityColonists          Commodity = "colonists"
	CommoditySpecialGoods       Commodity = "special_goods"
)

// AllCommodities lists the fixed commodity set in canonical order.
var AllCommodities = []Commodity{
	CommodityOre,
	CommodityOrganics,
	CommodityEquipment,
	CommodityFuel,
	CommodityLuxuryGoods,
	CommodityGourmetFood,
	CommodityExoticTechnology,
	CommodityAdvancedComponents,
	CommodityColonists,
	CommoditySpecialGoods,
}

type commodityDef struct {
	basePrice int
	capacity  int
}

var commodityCatalog = map[Commodity]commodityDef{
	CommodityOre:                {basePrice: 15, capacity: 5000},
	CommodityOrganics:           {basePrice: 18, capacity: 3000},
	CommodityEquipment:          {basePrice: 35, capacity: 2000},
	CommodityFuel:               {basePrice: 12, capacity: 4000},
	CommodityLuxuryGoods:        {basePrice: 100, capacity: 800},
	CommodityGourmetFood:        {basePrice: 80, capacity: 600},
	CommodityExoticTechnology:   {basePrice: 250, capacity: 200},
	CommodityAdvancedComponents: {basePrice: 150, capacity: 400},
	CommodityColonists:          {basePrice: 50, capacity: 500},
	CommoditySpecialGoods:       {basePrice: 500, capacity: 250},
}

// PortClass is one of 12 trading profiles. Class 0 is the origin class,
// hard-assigned to sector 1 and never sampled for any other port.
type PortClass int

const (
	ClassOrigin             PortClass = 0 // origin sector only
	ClassMiningOperation    PortClass = 1 // buys ore
	ClassAgriculturalCenter PortClass = 2 // buys organics
	ClassIndustrialHub      PortClass = 3 // buys equipment
	ClassDistributionCenter PortClass = 4 // sells everything
	ClassCollectionHub      PortClass = 5 // buys everything
	ClassMixedMarket        PortClass = 6
	ClassResourceExchange   PortClass = 7
	ClassBlackHole          PortClass = 8 // premium buyer
	ClassNova               PortClass = 9 // premium seller
	ClassLuxuryMarket       PortClass = 10
	ClassAdvancedTechHub    PortClass = 11

	PortClassCount = 12
)

var portClassNames = [PortClassCount]string{
	"Origin",
	"Mining Operation",
	"Agricultural Center",
	"Industrial Hub",
	"Distribution Center",
	"Collection Hub",
	"Mixed Market",
	"Resource Exchange",
	"Black Hole",
	"Nova",
	"Luxury Market",
	"Advanced Tech Hub",
}

func (c PortClass) String() string {
	if c < 0 || c >= PortClassCount {
		return "unknown"
	}
	return portClassNames[c]
}

// TradingPattern lists which commodities a port class buys and sells. The
// pattern is fixed per class; generation never overrides it per instance.
type TradingPattern struct {
	Buys  []Commodity
	Sells []Commodity
}

var classPatterns = [PortClassCount]TradingPattern{
	ClassOrigin: {
		Buys:  []Commodity{CommoditySpecialGoods},
		Sells: []Commodity{CommoditySpecialGoods, CommodityColonists},
	},
	ClassMiningOperation: {
		Buys:  []Commodity{CommodityOre},
		Sells: []Commodity{CommodityOrganics, CommodityEquipment},
	},
	ClassAgriculturalCenter: {
		Buys:  []Commodity{CommodityOrganics},
		Sells: []Commodity{CommodityOre, CommodityEquipment},
	},
	ClassIndustrialHub: {
		Buys:  []Commodity{CommodityEquipment},
		Sells: []Commodity{CommodityOre, CommodityOrganics},
	},
	ClassDistributionCenter: {
		Sells: []Commodity{CommodityOre, CommodityOrganics, CommodityEquipment, CommodityFuel},
	},
	ClassCollectionHub: {
		Buys: []Commodity{CommodityOre, CommodityOrganics, CommodityEquipment, CommodityFuel},
	},
	ClassMixedMarket: {
		Buys:  []Commodity{CommodityOre, CommodityOrganics},
		Sells: []Commodity{CommodityEquipment, CommodityFuel},
	},
	ClassResourceExchange: {
		Buys:  []Commodity{CommodityEquipment, CommodityFuel},
		Sells: []Commodity{CommodityOre, CommodityOrganics},
	},
	ClassBlackHole: {
		Buys: []Commodity{CommodityOre, CommodityOrganics, CommodityEquipment, CommodityFuel},
	},
	ClassNova: {
		Sells: []Commodity{CommodityOre, CommodityOrganics, CommodityEquipment, CommodityFuel},
	},
	ClassLuxuryMarket: {
		Buys:  []Commodity{CommodityGourmetFood},
		Sells: []Commodity{CommodityLuxuryGoods, CommodityExoticTechnology},
	},
	ClassAdvancedTechHub: {
		Buys:  []Commodity{CommodityExoticTechnology},
		Sells: []Commodity{CommodityAdvancedComponents},
	},
}

// PatternFor returns the static buy/sell pattern for a port class.
func PatternFor(class PortClass) TradingPattern {
	if class < 0 || class >= PortClassCount {
		return TradingPattern{}
	}
	return classPatterns[class]
}
