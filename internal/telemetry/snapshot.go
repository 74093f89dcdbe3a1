package telemetry

import "process-mining-service/internal/snapshot"

// SnapshotListener updates the snapshot gauges and refresh counters.
func SnapshotListener() snapshot.Listener {
	return snapshot.ListenerFunc(func(s *snapshot.Snapshot) {
		for ds, d := range s.Datasets {
			result := "success"
			if d.Err != nil {
				result = "error"
			}
			SnapshotRefreshesTotal.WithLabelValues(string(ds), result).Inc()
			SnapshotRows.WithLabelValues(string(ds)).Set(float64(len(d.Events)))
		}
	})
}
