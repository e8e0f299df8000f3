package flags

import (
	"testing"

	"cogmetrics/domain/metrics"
)

func domainScores(sa, ri, wm, ic, cf, ps float64) []metrics.DomainScore {
	return []metrics.DomainScore{
		{Domain: metrics.DomainSustainedAttention, Score: sa},
		{Domain: metrics.DomainResponseInhibition, Score: ri},
		{Domain: metrics.DomainWorkingMemory, Score: wm},
		{Domain: metrics.DomainInterferenceControl, Score: ic},
		{Domain: metrics.DomainCognitiveFlex, Score: cf},
		{Domain: metrics.DomainProcessingSpeed, Score: ps},
	}
}

// healthyInputs trips no flag: every score comfortably mid-high, timing calm.
func healthyInputs() Inputs {
	return Inputs{
		Domains:         domainScores(70, 70, 70, 70, 70, 70),
		Timing:          metrics.TimingStats{MeanRT: 500, RTSD: 60, RTCV: 0.12},
		Tau:             metrics.TauResult{Value: 48, Band: metrics.TauBorderline},
		OverallAccuracy: 80,
		OmissionRate:    5,
	}
}

func TestDetect_QuietBaseline(t *testing.T) {
	f := Detect(healthyInputs())
	if f != (metrics.FlagSet{}) {
		t.Errorf("expected no flags on a healthy profile, got %+v", f)
	}
}

func TestDetect_Inattention(t *testing.T) {
	t.Run("low sustained attention", func(t *testing.T) {
		in := healthyInputs()
		in.Domains = domainScores(54, 70, 70, 70, 70, 70)
		if !Detect(in).Inattention {
			t.Error("SA 54 must fire inattention")
		}
	})
	t.Run("high omission rate alone", func(t *testing.T) {
		in := healthyInputs()
		in.OmissionRate = 16
		if !Detect(in).Inattention {
			t.Error("omission rate 16 must fire inattention")
		}
	})
	t.Run("boundary values do not fire", func(t *testing.T) {
		in := healthyInputs()
		in.Domains = domainScores(55, 70, 70, 70, 70, 70)
		in.OmissionRate = 15
		if Detect(in).Inattention {
			t.Error("SA exactly 55 and omission exactly 15 must not fire")
		}
	})
}

func TestDetect_Impulsivity(t *testing.T) {
	in := healthyInputs()
	in.Domains = domainScores(70, 54, 70, 70, 70, 70)
	if !Detect(in).Impulsivity {
		t.Error("RI 54 must fire impulsivity")
	}
	in.Domains = domainScores(70, 55, 70, 70, 70, 70)
	if Detect(in).Impulsivity {
		t.Error("RI exactly 55 must not fire")
	}
}

func TestDetect_Variability(t *testing.T) {
	t.Run("elevated tau", func(t *testing.T) {
		in := healthyInputs()
		in.Tau = metrics.TauResult{Value: 61, Band: metrics.TauElevated}
		if !Detect(in).Variability {
			t.Error("tau 61 must fire variability")
		}
	})
	t.Run("elevated cv", func(t *testing.T) {
		in := healthyInputs()
		in.Timing.RTCV = 0.31
		if !Detect(in).Variability {
			t.Error("CV 0.31 must fire variability")
		}
	})
}

func TestDetect_Compensation(t *testing.T) {
	t.Run("accurate but slow", func(t *testing.T) {
		in := healthyInputs()
		in.OverallAccuracy = 90
		in.Timing.MeanRT = 650
		if !Detect(in).Compensation {
			t.Error("accuracy 90 with RT 650 must fire compensation")
		}
	})
	t.Run("accurate but variable", func(t *testing.T) {
		in := healthyInputs()
		in.OverallAccuracy = 90
		in.Tau = metrics.TauResult{Value: 75, Band: metrics.TauElevated}
		if !Detect(in).Compensation {
			t.Error("accuracy 90 with tau 75 must fire compensation")
		}
	})
	t.Run("accurate and fast does not fire", func(t *testing.T) {
		in := healthyInputs()
		in.OverallAccuracy = 90
		in.Timing = metrics.TimingStats{MeanRT: 450, RTSD: 40, RTCV: 0.09}
		in.Tau = metrics.TauResult{Value: 32, Band: metrics.TauNormal}
		if Detect(in).Compensation {
			t.Error("clean fast performance must not read as compensation")
		}
	})
	t.Run("slow without accuracy does not fire", func(t *testing.T) {
		in := healthyInputs()
		in.OverallAccuracy = 80
		in.Timing.MeanRT = 700
		if Detect(in).Compensation {
			t.Error("compensation requires accuracy above 85")
		}
	})
}

func TestDetect_Hyperfocus(t *testing.T) {
	in := healthyInputs()
	in.OverallAccuracy = 95
	in.Timing.RTCV = 0.10
	in.Domains = domainScores(85, 80, 80, 80, 80, 80)
	if !Detect(in).Hyperfocus {
		t.Error("accuracy 95, CV 0.10, SA 85 must fire hyperfocus")
	}

	in.Timing.RTCV = 0.20
	if Detect(in).Hyperfocus {
		t.Error("hyperfocus requires CV below 0.15")
	}
}

func TestDetect_ExecutiveDysfunction(t *testing.T) {
	in := healthyInputs()
	in.Domains = domainScores(70, 70, 45, 70, 45, 70)
	if !Detect(in).ExecutiveDysfunction {
		t.Error("WM 45 and CF 45 must fire executive dysfunction")
	}

	// One leg intact is not enough
	in.Domains = domainScores(70, 70, 45, 70, 60, 70)
	if Detect(in).ExecutiveDysfunction {
		t.Error("executive dysfunction requires both WM and CF below 50")
	}
}

func TestDetect_ProcessingDeficit(t *testing.T) {
	in := healthyInputs()
	in.Domains = domainScores(70, 70, 70, 70, 70, 44)
	if !Detect(in).ProcessingDeficit {
		t.Error("PS 44 must fire processing deficit")
	}
}

func TestDetectPatterns_NeverEmpty(t *testing.T) {
	got := DetectPatterns(healthyInputs(), metrics.FlagSet{})
	if len(got) != 1 {
		t.Fatalf("got %d patterns, want the single fallback", len(got))
	}
	if got[0].Label != "Typical Profile" {
		t.Errorf("fallback label = %q", got[0].Label)
	}
}

func TestDetectPatterns_CompensatedHighPerformer(t *testing.T) {
	got := DetectPatterns(healthyInputs(), metrics.FlagSet{Compensation: true})
	if len(got) != 1 || got[0].Label != "Compensated High-Performer" {
		t.Fatalf("got %+v, want single Compensated High-Performer", got)
	}
	if got[0].Confidence != metrics.ConfidenceHigh {
		t.Errorf("confidence = %q, want %q", got[0].Confidence, metrics.ConfidenceHigh)
	}
}

func TestDetectPatterns_ImpulsiveRequiresIntactSpeed(t *testing.T) {
	f := metrics.FlagSet{Impulsivity: true, ProcessingDeficit: true}
	for _, p := range DetectPatterns(healthyInputs(), f) {
		if p.Label == "Impulsive Responder" {
			t.Error("impulsive responder must not fire alongside a processing deficit")
		}
	}
}

func TestDetectPatterns_MultipleFire(t *testing.T) {
	f := metrics.FlagSet{Variability: true, Inattention: true, ExecutiveDysfunction: true}
	got := DetectPatterns(healthyInputs(), f)
	labels := make(map[string]bool, len(got))
	for _, p := range got {
		labels[p.Label] = true
	}
	if !labels["Variable Attention Profile"] || !labels["Executive Dysfunction Profile"] {
		t.Errorf("expected both variable-attention and executive patterns, got %+v", labels)
	}
}
