package response

// AnalyticsEnvelope wraps the analytics payloads. Count/Status/Period are only
// present on the endpoints that echo them back.
type AnalyticsEnvelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Count   *int   `json:"count,omitempty"`
	Status  string `json:"status,omitempty"`
	Period  string `json:"period,omitempty"`
	Date    string `json:"date"`
}

func AnalyticsOK(data any, date string) AnalyticsEnvelope {
	return AnalyticsEnvelope{Success: true, Data: data, Date: date}
}

func (e AnalyticsEnvelope) WithCount(n int) AnalyticsEnvelope {
	e.Count = &n
	return e
}

func (e AnalyticsEnvelope) WithStatus(status string) AnalyticsEnvelope {
	e.Status = status
	return e
}

func (e AnalyticsEnvelope) WithPeriod(period string) AnalyticsEnvelope {
	e.Period = period
	return e
}
