package circuitbreaker

import (
	"github.com/amusetravel-BackEnd/amuseAdmin/pkg/httpclient"
	"github.com/sony/gobreaker/v2"
)

// CreateCircuitBreaker trips once at least 3 requests were seen and 60% of them failed.
// isSuccessful decides which errors count against the backend.
func CreateCircuitBreaker(name string, isSuccessful func(err error) bool) *gobreaker.CircuitBreaker[*httpclient.HttpResponse] {
	var st gobreaker.Settings
	st.Name = name
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}
	st.IsSuccessful = isSuccessful

	cb := gobreaker.NewCircuitBreaker[*httpclient.HttpResponse](st)

	return cb
}
