// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package geo

import (
	"context"
	"strings"
	"time"

	"github.com/tomtom215/wayfarer/internal/metrics"
)

// OfflineGeocoder resolves names against a built-in gazetteer of major
// cities, regions and countries. It needs no network and is deterministic.
//
// A name is tried as a whole first, then component by component from the
// most specific: "Gion, Kyoto, Japan" tries "gion, kyoto, japan", "gion",
// "kyoto" and finally "japan".
type OfflineGeocoder struct {
	places map[string]Point
}

// NewOfflineGeocoder returns a geocoder over the built-in gazetteer plus
// extra, which takes precedence.
func NewOfflineGeocoder(extra map[string]Point) *OfflineGeocoder {
	places := make(map[string]Point, len(gazetteer)+len(extra))
	for name, p := range gazetteer {
		places[name] = p
	}
	for name, p := range extra {
		places[NormalizeName(name)] = p
	}
	return &OfflineGeocoder{places: places}
}

// Name implements Geocoder.
func (g *OfflineGeocoder) Name() string { return "offline" }

// Geocode implements Geocoder. It never returns an error.
func (g *OfflineGeocoder) Geocode(_ context.Context, name string) (Point, bool, error) {
	start := time.Now()
	p, found := g.lookup(name)
	result := "not_found"
	if found {
		result = "found"
	}
	metrics.RecordGeocode(g.Name(), result, time.Since(start))
	return p, found, nil
}

func (g *OfflineGeocoder) lookup(name string) (Point, bool) {
	key := NormalizeName(name)
	if key == "" {
		return Point{}, false
	}
	if p, ok := g.places[key]; ok {
		return p, true
	}
	for _, part := range strings.Split(key, ",") {
		if p, ok := g.places[strings.TrimSpace(part)]; ok {
			return p, true
		}
	}
	return Point{}, false
}

// gazetteer keys are NormalizeName forms.
var gazetteer = map[string]Point{
	// Europe
	"amsterdam":  {52.3676, 4.9041},
	"athens":     {37.9838, 23.7275},
	"barcelona":  {41.3874, 2.1686},
	"berlin":     {52.5200, 13.4050},
	"bruges":     {51.2093, 3.2247},
	"budapest":   {47.4979, 19.0402},
	"chamonix":   {45.9237, 6.8694},
	"copenhagen": {55.6761, 12.5683},
	"dublin":     {53.3498, -6.2603},
	"dubrovnik":  {42.6507, 18.0944},
	"edinburgh":  {55.9533, -3.1883},
	"florence":   {43.7696, 11.2558},
	"geneva":     {46.2044, 6.1432},
	"interlaken": {46.6863, 7.8632},
	"istanbul":   {41.0082, 28.9784},
	"lisbon":     {38.7223, -9.1393},
	"london":     {51.5072, -0.1276},
	"madrid":     {40.4168, -3.7038},
	"milan":      {45.4642, 9.1900},
	"munich":     {48.1351, 11.5820},
	"naples":     {40.8518, 14.2681},
	"nice":       {43.7102, 7.2620},
	"oslo":       {59.9139, 10.7522},
	"paris":      {48.8566, 2.3522},
	"porto":      {41.1579, -8.6291},
	"prague":     {50.0755, 14.4378},
	"reykjavik":  {64.1466, -21.9426},
	"rome":       {41.9028, 12.4964},
	"santorini":  {36.3932, 25.4615},
	"seville":    {37.3891, -5.9845},
	"stockholm":  {59.3293, 18.0686},
	"tromsø":     {69.6492, 18.9553},
	"tromso":     {69.6492, 18.9553},
	"venice":     {45.4408, 12.3155},
	"vienna":     {48.2082, 16.3738},
	"zermatt":    {46.0207, 7.7491},
	"zurich":     {47.3769, 8.5417},
	"tuscany":    {43.7711, 11.2486},
	"the alps":   {46.5000, 9.0000},
	"alps":       {46.5000, 9.0000},
	"scotland":   {56.4907, -4.2026},
	"england":    {52.3555, -1.1743},
	"lapland":    {67.9222, 26.5046},
	"svalbard":   {78.2232, 15.6267},
	"bavaria":    {48.7904, 11.4979},
	"provence":   {43.9352, 6.0679},
	"andalusia":  {37.5443, -4.7278},
	"crete":      {35.2401, 24.8093},
	"sicily":     {37.6000, 14.0154},

	// Asia
	"bali":              {-8.3405, 115.0920},
	"bangkok":           {13.7563, 100.5018},
	"beijing":           {39.9042, 116.4074},
	"chiang mai":        {18.7883, 98.9853},
	"delhi":             {28.7041, 77.1025},
	"new delhi":         {28.6139, 77.2090},
	"dubai":             {25.2048, 55.2708},
	"hanoi":             {21.0278, 105.8342},
	"ho chi minh city":  {10.8231, 106.6297},
	"hong kong":         {22.3193, 114.1694},
	"jaipur":            {26.9124, 75.7873},
	"kathmandu":         {27.7172, 85.3240},
	"kyoto":             {35.0116, 135.7681},
	"kuala lumpur":      {3.1390, 101.6869},
	"mumbai":            {19.0760, 72.8777},
	"osaka":             {34.6937, 135.5023},
	"seoul":             {37.5665, 126.9780},
	"shanghai":          {31.2304, 121.4737},
	"siem reap":         {13.3633, 103.8564},
	"singapore":         {1.3521, 103.8198},
	"taipei":            {25.0330, 121.5654},
	"tokyo":             {35.6762, 139.6503},
	"everest base camp": {28.0026, 86.8528},

	// Africa and the Middle East
	"cairo":     {30.0444, 31.2357},
	"cape town": {-33.9249, 18.4241},
	"marrakech": {31.6295, -7.9811},
	"nairobi":   {-1.2921, 36.8219},
	"zanzibar":  {-6.1659, 39.2026},
	"petra":     {30.3285, 35.4444},
	"jerusalem": {31.7683, 35.2137},
	"serengeti": {-2.3333, 34.8333},

	// Americas
	"banff":          {51.1784, -115.5708},
	"buenos aires":   {-34.6037, -58.3816},
	"cancun":         {21.1619, -86.8515},
	"chicago":        {41.8781, -87.6298},
	"cusco":          {-13.5319, -71.9675},
	"havana":         {23.1136, -82.3666},
	"honolulu":       {21.3069, -157.8583},
	"las vegas":      {36.1699, -115.1398},
	"lima":           {-12.0464, -77.0428},
	"los angeles":    {34.0522, -118.2437},
	"machu picchu":   {-13.1631, -72.5450},
	"mexico city":    {19.4326, -99.1332},
	"miami":          {25.7617, -80.1918},
	"montreal":       {45.5017, -73.5673},
	"new orleans":    {29.9511, -90.0715},
	"new york":       {40.7128, -74.0060},
	"new york city":  {40.7128, -74.0060},
	"patagonia":      {-41.8102, -68.9063},
	"rio de janeiro": {-22.9068, -43.1729},
	"san francisco":  {37.7749, -122.4194},
	"santiago":       {-33.4489, -70.6693},
	"seattle":        {47.6062, -122.3321},
	"toronto":        {43.6532, -79.3832},
	"ushuaia":        {-54.8019, -68.3030},
	"vancouver":      {49.2827, -123.1207},
	"yosemite":       {37.8651, -119.5383},

	// Oceania and the poles
	"auckland":   {-36.8485, 174.7633},
	"melbourne":  {-37.8136, 144.9631},
	"queenstown": {-45.0312, 168.6626},
	"sydney":     {-33.8688, 151.2093},
	"fiji":       {-17.7134, 178.0650},
	"maldives":   {3.2028, 73.2207},
	"antarctica": {-82.8628, 135.0000},

	// Countries and regions (approximate centroids)
	"argentina":            {-38.4161, -63.6167},
	"australia":            {-25.2744, 133.7751},
	"austria":              {47.5162, 14.5501},
	"belgium":              {50.5039, 4.4699},
	"brazil":               {-14.2350, -51.9253},
	"cambodia":             {12.5657, 104.9910},
	"canada":               {56.1304, -106.3468},
	"chile":                {-35.6751, -71.5430},
	"china":                {35.8617, 104.1954},
	"croatia":              {45.1000, 15.2000},
	"cuba":                 {21.5218, -77.7812},
	"czech republic":       {49.8175, 15.4730},
	"czechia":              {49.8175, 15.4730},
	"denmark":              {56.2639, 9.5018},
	"egypt":                {26.8206, 30.8025},
	"finland":              {61.9241, 25.7482},
	"france":               {46.2276, 2.2137},
	"germany":              {51.1657, 10.4515},
	"greece":               {39.0742, 21.8243},
	"iceland":              {64.9631, -19.0208},
	"india":                {20.5937, 78.9629},
	"indonesia":            {-0.7893, 113.9213},
	"ireland":              {53.4129, -8.2439},
	"israel":               {31.0461, 34.8516},
	"italy":                {41.8719, 12.5674},
	"japan":                {36.2048, 138.2529},
	"jordan":               {30.5852, 36.2384},
	"kenya":                {-0.0236, 37.9062},
	"malaysia":             {4.2105, 101.9758},
	"mexico":               {23.6345, -102.5528},
	"morocco":              {31.7917, -7.0926},
	"nepal":                {28.3949, 84.1240},
	"netherlands":          {52.1326, 5.2913},
	"new zealand":          {-40.9006, 174.8860},
	"norway":               {60.4720, 8.4689},
	"peru":                 {-9.1900, -75.0152},
	"portugal":             {39.3999, -8.2245},
	"south africa":         {-30.5595, 22.9375},
	"south korea":          {35.9078, 127.7669},
	"spain":                {40.4637, -3.7492},
	"sweden":               {60.1282, 18.6435},
	"switzerland":          {46.8182, 8.2275},
	"taiwan":               {23.6978, 120.9605},
	"tanzania":             {-6.3690, 34.8888},
	"thailand":             {15.8700, 100.9925},
	"turkey":               {38.9637, 35.2433},
	"uae":                  {23.4241, 53.8478},
	"united arab emirates": {23.4241, 53.8478},
	"uk":                   {55.3781, -3.4360},
	"united kingdom":       {55.3781, -3.4360},
	"usa":                  {37.0902, -95.7129},
	"united states":        {37.0902, -95.7129},
	"vietnam":              {14.0583, 108.2772},
}
