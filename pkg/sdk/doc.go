// Package cybersearch provides an HTTP client for the cybersearch API
// server.
//
//	client := cybersearch.New("http://localhost:8080",
//	    cybersearch.WithAPIKey("secret"),
//	)
//	resp, err := client.GenerateVectors(ctx, cybersearch.GenerateRequest{
//	    Term:    "admin login",
//	    Vectors: 5,
//	})
//	for _, v := range resp.Vectors {
//	    fmt.Println(v.URL)
//	}
//
// Request parameters left at zero fall back to the server's configured
// profile; out-of-range values are clamped server-side. API failures are
// returned as *APIError and carry the server's error code.
package cybersearch
