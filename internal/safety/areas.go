package safety

import "safe-route-service/internal/domain"

// A named locality with a known center coordinate. The table below is
// the static lookup zones resolve against; zone records only carry an
// area name, never coordinates.
type Area struct {
	Name   string
	Center domain.Point
}

// DefaultAreas returns the built-in locality table for the deployment
// region (greater Visakhapatnam). Iteration order is significant: the
// fuzzy resolver returns the first match, and equal-distance ties in
// scoring break toward the earlier entry.
func DefaultAreas() []Area {
	return []Area{
		{"RK Beach", domain.Point{Lat: 17.7140, Lng: 83.3240}},
		{"Jagadamba Junction", domain.Point{Lat: 17.7081, Lng: 83.3029}},
		{"Dwaraka Nagar", domain.Point{Lat: 17.7286, Lng: 83.3054}},
		{"Railway New Colony", domain.Point{Lat: 17.7237, Lng: 83.2931}},
		{"Allipuram", domain.Point{Lat: 17.7130, Lng: 83.2940}},
		{"Dondaparthy", domain.Point{Lat: 17.7310, Lng: 83.2960}},
		{"Akkayyapalem", domain.Point{Lat: 17.7370, Lng: 83.3010}},
		{"Seethammadhara", domain.Point{Lat: 17.7440, Lng: 83.3170}},
		{"MVP Colony", domain.Point{Lat: 17.7420, Lng: 83.3350}},
		{"Lawsons Bay Colony", domain.Point{Lat: 17.7330, Lng: 83.3400}},
		{"Pedda Waltair", domain.Point{Lat: 17.7280, Lng: 83.3330}},
		{"Chinna Waltair", domain.Point{Lat: 17.7220, Lng: 83.3300}},
		{"Siripuram", domain.Point{Lat: 17.7180, Lng: 83.3190}},
		{"Ram Nagar", domain.Point{Lat: 17.7160, Lng: 83.3080}},
		{"Maharanipeta", domain.Point{Lat: 17.7090, Lng: 83.3110}},
		{"Old Town", domain.Point{Lat: 17.6960, Lng: 83.3000}},
		{"One Town", domain.Point{Lat: 17.6930, Lng: 83.2950}},
		{"Port Area", domain.Point{Lat: 17.6880, Lng: 83.2880}},
		{"Scindia", domain.Point{Lat: 17.6930, Lng: 83.2680}},
		{"Malkapuram", domain.Point{Lat: 17.6870, Lng: 83.2480}},
		{"Sriharipuram", domain.Point{Lat: 17.6820, Lng: 83.2390}},
		{"Gajuwaka", domain.Point{Lat: 17.6863, Lng: 83.2010}},
		{"Old Gajuwaka", domain.Point{Lat: 17.6920, Lng: 83.1990}},
		{"Kurmannapalem", domain.Point{Lat: 17.6590, Lng: 83.1640}},
		{"Duvvada", domain.Point{Lat: 17.6680, Lng: 83.1470}},
		{"Steel Plant Township", domain.Point{Lat: 17.6290, Lng: 83.1770}},
		{"Aganampudi", domain.Point{Lat: 17.6620, Lng: 83.1850}},
		{"Vadlapudi", domain.Point{Lat: 17.6480, Lng: 83.1900}},
		{"Pedagantyada", domain.Point{Lat: 17.6670, Lng: 83.2150}},
		{"NAD Junction", domain.Point{Lat: 17.7447, Lng: 83.2425}},
		{"NAD", domain.Point{Lat: 17.7430, Lng: 83.2480}},
		{"Birla Junction", domain.Point{Lat: 17.7330, Lng: 83.2600}},
		{"Kancharapalem", domain.Point{Lat: 17.7290, Lng: 83.2810}},
		{"Gopalapatnam", domain.Point{Lat: 17.7570, Lng: 83.2280}},
		{"Vepagunta", domain.Point{Lat: 17.7730, Lng: 83.2180}},
		{"Pendurthi", domain.Point{Lat: 17.7910, Lng: 83.2020}},
		{"Chintalagraharam", domain.Point{Lat: 17.7990, Lng: 83.1890}},
		{"Simhachalam", domain.Point{Lat: 17.7666, Lng: 83.2510}},
		{"Adavivaram", domain.Point{Lat: 17.7750, Lng: 83.2640}},
		{"Hanumanthawaka", domain.Point{Lat: 17.7560, Lng: 83.3190}},
		{"Maddilapalem", domain.Point{Lat: 17.7350, Lng: 83.3140}},
		{"Murali Nagar", domain.Point{Lat: 17.7440, Lng: 83.3060}},
		{"Marripalem", domain.Point{Lat: 17.7400, Lng: 83.2890}},
		{"Sujatha Nagar", domain.Point{Lat: 17.7820, Lng: 83.2230}},
		{"Arilova", domain.Point{Lat: 17.7650, Lng: 83.3270}},
		{"Yendada", domain.Point{Lat: 17.7720, Lng: 83.3540}},
		{"Rushikonda", domain.Point{Lat: 17.7820, Lng: 83.3850}},
		{"Sagar Nagar", domain.Point{Lat: 17.7660, Lng: 83.3620}},
		{"Madhurawada", domain.Point{Lat: 17.8210, Lng: 83.3540}},
		{"Kommadi", domain.Point{Lat: 17.8100, Lng: 83.3650}},
		{"PM Palem", domain.Point{Lat: 17.7870, Lng: 83.3530}},
		{"Bheemunipatnam", domain.Point{Lat: 17.8900, Lng: 83.4520}},
		{"Tagarapuvalasa", domain.Point{Lat: 17.9180, Lng: 83.4240}},
		{"Anandapuram", domain.Point{Lat: 17.8560, Lng: 83.3760}},
		{"Kapuluppada", domain.Point{Lat: 17.8050, Lng: 83.3920}},
		{"Anakapalle", domain.Point{Lat: 17.6910, Lng: 83.0040}},
		{"Parawada", domain.Point{Lat: 17.6280, Lng: 83.0820}},
		{"Lankelapalem", domain.Point{Lat: 17.6400, Lng: 83.1270}},
		{"Atchutapuram", domain.Point{Lat: 17.5680, Lng: 83.0760}},
		{"Sabbavaram", domain.Point{Lat: 17.7530, Lng: 83.1200}},
		{"Pendurthi Junction", domain.Point{Lat: 17.7880, Lng: 83.1980}},
		{"Kothavalasa", domain.Point{Lat: 17.9010, Lng: 83.1870}},
		{"Kailasagiri", domain.Point{Lat: 17.7490, Lng: 83.3420}},
		{"Appu Ghar", domain.Point{Lat: 17.7550, Lng: 83.3470}},
		{"Beach Road", domain.Point{Lat: 17.7210, Lng: 83.3290}},
		{"Fishing Harbour", domain.Point{Lat: 17.6960, Lng: 83.3010}},
		{"Poorna Market", domain.Point{Lat: 17.7020, Lng: 83.2980}},
		{"Kurupam Market", domain.Point{Lat: 17.7050, Lng: 83.2990}},
		{"Town Kotha Road", domain.Point{Lat: 17.7000, Lng: 83.2960}},
		{"Gnanapuram", domain.Point{Lat: 17.7180, Lng: 83.2870}},
		{"Industrial Estate", domain.Point{Lat: 17.7280, Lng: 83.2320}},
		{"Auto Nagar", domain.Point{Lat: 17.6750, Lng: 83.2080}},
		{"Sheela Nagar", domain.Point{Lat: 17.7010, Lng: 83.2120}},
		{"BHPV", domain.Point{Lat: 17.7080, Lng: 83.1940}},
		{"Naiduthota", domain.Point{Lat: 17.7260, Lng: 83.2230}},
		{"Prahaladapuram", domain.Point{Lat: 17.7440, Lng: 83.2170}},
		{"Chinamushidiwada", domain.Point{Lat: 17.7800, Lng: 83.2350}},
		{"Gambhiram", domain.Point{Lat: 17.8290, Lng: 83.3310}},
		{"Boyapalem", domain.Point{Lat: 17.7960, Lng: 83.3110}},
		{"Paradesipalem", domain.Point{Lat: 17.7990, Lng: 83.3420}},
		{"China Gadili", domain.Point{Lat: 17.7620, Lng: 83.3030}},
		{"Venkojipalem", domain.Point{Lat: 17.7500, Lng: 83.3310}},
	}
}
