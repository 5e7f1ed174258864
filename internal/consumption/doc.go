// Package consumption provides a client for the Azure Consumption usage
// details REST API.
//
// The client issues a single authenticated GET against
//
//	https://management.azure.com/subscriptions/{subscription_id}/providers/Microsoft.Consumption/usageDetails?api-version=2021-10-01
//
// with one request header, Authorization: Bearer {token}, and decodes the
// JSON body into UsageDetails. There is deliberately no retry, no caching,
// and no pagination: a nextLink in the response is decoded and logged at
// debug level but never followed, so each FetchUsage call maps to exactly
// one request and at most one page of records.
//
// Failure classification:
//   - *RequestError: the endpoint answered with a non-2xx status. Carries
//     the status code and the raw, undecoded body text. The client does not
//     decide exit behavior; callers render or log the failure themselves.
//   - *ParseError: a 2xx response whose body was not valid JSON.
//   - Plain wrapped errors: transport failures (connection, timeout).
//
// Field presence in the response is modeled with pointers: the schema does
// not guarantee usageStart or pretaxCost on every record, and a nil pointer
// is how downstream code distinguishes an absent field from an empty one.
// Cost amounts are carried as CostValue, which preserves the literal wire
// token instead of round-tripping through a float.
//
// Example usage:
//
//	client := consumption.NewClient(cfg, log)
//	doc, err := client.FetchUsage(ctx, token)
//	if err != nil {
//		var reqErr *consumption.RequestError
//		if errors.As(err, &reqErr) {
//			log.Printf("rejected with status %d: %s", reqErr.StatusCode, reqErr.Body)
//		}
//		return err
//	}
//
//	for _, rec := range doc.Value {
//		// rec.Properties may be nil
//	}
package consumption
