package models

// Device catalogue shown on the public booking form.
var (
	DeviceTypes = []string{"Laptop", "Phone", "Tablet", "Desktop", "Other"}

	PhoneBrands   = []string{"Apple", "Samsung", "Google", "Huawei", "Xiaomi", "Other"}
	LaptopBrands  = []string{"Dell", "HP", "Lenovo", "Apple", "Asus", "Acer", "Other"}
	DefaultBrands = []string{"Apple", "Samsung", "Dell", "HP", "Lenovo", "Other"}
)

// BrandsForDeviceType returns the brand list for a device type.
func BrandsForDeviceType(deviceType string) []string {
	switch deviceType {
	case "Phone":
		return PhoneBrands
	case "Laptop":
		return LaptopBrands
	default:
		return DefaultBrands
	}
}
