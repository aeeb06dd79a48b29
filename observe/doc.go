// Package observe provides OpenTelemetry metric instruments for listkit
// collections.
//
//	mp, err := observe.InitMeter(ctx, observe.DefaultMeterConfig("my-app"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observe.NewMetrics(observe.Meter("my-app"))
//	coll := collection.New(collection.WithMetrics[string](metrics))
//
// All Record helpers are safe on a nil *Metrics, so collections can call
// them unconditionally.
package observe
