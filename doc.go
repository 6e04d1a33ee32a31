// Package cybersearch turns a search phrase into a batch of search
// engine URLs ("vectors"), each widened by a site-pattern clause of
// decaying density. The package builds URLs only; it never executes
// searches or parses results.
//
// # Quick start
//
//	client := cybersearch.New()
//	result, err := client.Generate(ctx, "admin login")
//	for _, v := range result.Vectors {
//	    fmt.Println(v.URL)
//	}
//
// # Tuned batches
//
//	result, err := client.Batch("admin login").
//	    Vectors(5).
//	    Density(512).
//	    Page(2).
//	    Do(ctx)
//
// Launch opens the primary vector in the local browser after building;
// a failed launch is reported as a popup-blocked diagnostic on the
// result, never as an error:
//
//	result, err := client.Batch("admin login").Vectors(3).Launch(ctx)
//
// Out-of-range parameters are clamped, not rejected. A phrase that is
// empty after sanitization returns ErrEmptyTerm and no vectors.
package cybersearch
