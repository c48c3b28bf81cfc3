// Package pincode resolves six-digit Indian PIN codes to a city, district and
// state so address forms can fill those fields automatically.
//
// The built-in table covers the metro head post offices only. Resolvers can
// be stacked:
//
//	var r pincode.Resolver = pincode.Static()
//	r = pincode.Delayed(r, time.Second)   // simulated lookup latency
//	r = pincode.Cached(r, 64)             // LRU in front of the slow path
//
//	loc, err := r.Resolve(ctx, "110001")
//	if errors.Is(err, pincode.ErrNotFound) {
//		// leave the fields for manual entry
//	}
package pincode
