package valueobject

import "fmt"

// ProductType identifies a commercial insurance product line. It is a
// closed enumeration: adding a product is a single-point change here plus
// the ExposureBasis switch below.
type ProductType string

const (
	ProductGeneralLiability      ProductType = "GENERAL_LIABILITY"
	ProductWorkersComp           ProductType = "WORKERS_COMP"
	ProductCommercialProperty    ProductType = "COMMERCIAL_PROPERTY"
	ProductCommercialAuto        ProductType = "COMMERCIAL_AUTO"
	ProductProfessionalLiability ProductType = "PROFESSIONAL_LIABILITY"
	ProductCyberLiability        ProductType = "CYBER_LIABILITY"
)

// AllProductTypes lists every supported product line.
func AllProductTypes() []ProductType {
	return []ProductType{
		ProductGeneralLiability,
		ProductWorkersComp,
		ProductCommercialProperty,
		ProductCommercialAuto,
		ProductProfessionalLiability,
		ProductCyberLiability,
	}
}

// NewProductType validates and returns a ProductType from its symbolic name.
func NewProductType(s string) (ProductType, error) {
	pt := ProductType(s)
	for _, known := range AllProductTypes() {
		if pt == known {
			return pt, nil
		}
	}
	return "", fmt.Errorf("unknown product type %q", s)
}

// String returns the symbolic name used on the wire.
func (p ProductType) String() string { return string(p) }

// ExposureBasis identifies the quantity a base rate is applied to.
type ExposureBasis string

const (
	ExposurePayroll  ExposureBasis = "PAYROLL"       // per $1,000 of annual payroll
	ExposureRevenue  ExposureBasis = "REVENUE"       // per $1,000 of annual revenue
	ExposureVehicles ExposureBasis = "VEHICLE_COUNT" // per vehicle
	ExposureRecords  ExposureBasis = "RECORD_COUNT"  // per 1,000 records held
)

// ExposureBasis returns the rating basis for the product line. The switch
// is exhaustive over the closed enumeration.
func (p ProductType) ExposureBasis() ExposureBasis {
	switch p {
	case ProductWorkersComp:
		return ExposurePayroll
	case ProductGeneralLiability, ProductProfessionalLiability, ProductCommercialProperty:
		return ExposureRevenue
	case ProductCommercialAuto:
		return ExposureVehicles
	case ProductCyberLiability:
		return ExposureRecords
	default:
		// Unreachable for values produced by NewProductType.
		return ExposureRevenue
	}
}
