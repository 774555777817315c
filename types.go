package catalyst

// Topology constants for [Connection.Topology].
const (
	TopologyAllToAll     = "all_to_all"
	TopologyOneToOne     = "one_to_one"
	TopologyRandomSparse = "random_sparse"
	TopologyFixedFanIn   = "fixed_fan_in"
	TopologyFixedFanOut  = "fixed_fan_out"
)

// Job status constants. Completed and failed are terminal; no further
// transition occurs from either.
const (
	JobQueued    = "queued"
	JobRunning   = "running"
	JobCompleted = "completed"
	JobFailed    = "failed"
)

// Pricing tiers accepted by [Signup].
const (
	TierFree       = "free"
	TierResearcher = "researcher"
	TierStartup    = "startup"
	TierEnterprise = "enterprise"
)

// Account is returned by [Signup]. The key is the sole credential for all
// later calls; store it securely, it is not retrievable again.
type Account struct {
	// APIKey is the issued credential, prefixed "cn_live_".
	APIKey string `json:"api_key"`

	// Email the account was registered with.
	Email string `json:"email"`

	// Tier is the pricing tier: "free", "researcher", "startup" or
	// "enterprise".
	Tier string `json:"tier"`

	// Limits are the per-tier quotas in effect for this account.
	Limits AccountLimits `json:"limits"`

	// CheckoutURL is set for paid tiers: complete payment there to
	// activate the account.
	CheckoutURL string `json:"checkout_url,omitempty"`
}

// AccountLimits are the quotas attached to a pricing tier.
type AccountLimits struct {
	JobsPerDay   int `json:"jobs_per_day"`
	MaxNeurons   int `json:"max_neurons,omitempty"`
	MaxTimesteps int `json:"max_timesteps,omitempty"`
}

// Population is a named group of simulated neurons sharing size and
// parameters.
type Population struct {
	// Label identifies the population within its network. Connections and
	// stimuli reference populations by label.
	Label string `json:"label" yaml:"label"`

	// Size is the number of neurons.
	Size int `json:"size" yaml:"size"`

	// Params are neuron model parameters, e.g. {"threshold": 1000}.
	// Unset parameters take server-side defaults.
	Params map[string]float64 `json:"params,omitempty" yaml:"params,omitempty"`
}

// Connection is the wiring pattern between two populations.
type Connection struct {
	// Source and Target name populations declared in the same network.
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`

	// Topology is one of the Topology* constants. Empty defaults to
	// all-to-all server side.
	Topology string `json:"topology,omitempty" yaml:"topology,omitempty"`

	// Weight is the synaptic weight applied to every synapse the topology
	// generates.
	Weight float64 `json:"weight" yaml:"weight"`

	// P is the connection probability for random-sparse topologies.
	P *float64 `json:"p,omitempty" yaml:"p,omitempty"`

	// FanIn and FanOut bound fixed-fan topologies.
	FanIn  *int `json:"fan_in,omitempty" yaml:"fan_in,omitempty"`
	FanOut *int `json:"fan_out,omitempty" yaml:"fan_out,omitempty"`
}

// Network is a server-side spiking network definition, created once by
// [Client.CreateNetwork] and referenced by ID in job submissions. Immutable
// once created.
type Network struct {
	NetworkID    string       `json:"network_id"`
	TotalNeurons int          `json:"total_neurons"`
	Populations  []Population `json:"populations"`
	Connections  []Connection `json:"connections"`
}

// Stimulus is an external input current injected into a population during
// simulation.
type Stimulus struct {
	// Population names the target population by label.
	Population string `json:"population" yaml:"population"`

	// Current is the injected current per neuron.
	Current float64 `json:"current" yaml:"current"`

	// Start and End bound the injection window in timesteps. Zero values
	// mean the whole run.
	Start int `json:"start,omitempty" yaml:"start,omitempty"`
	End   int `json:"end,omitempty" yaml:"end,omitempty"`
}

// LearningConfig enables a server-side plasticity rule for a job. The rule
// semantics are opaque to this client.
type LearningConfig struct {
	// Rule names the learning rule, e.g. "stdp" or "reward_modulated".
	Rule string `json:"rule" yaml:"rule"`

	// Rate is the learning rate.
	Rate float64 `json:"rate,omitempty" yaml:"rate,omitempty"`

	// Params holds rule-specific parameters.
	Params map[string]float64 `json:"params,omitempty" yaml:"params,omitempty"`
}

// Reward is a reward signal delivered at a given timestep, used with
// reward-modulated learning rules.
type Reward struct {
	Timestep int     `json:"timestep" yaml:"timestep"`
	Value    float64 `json:"value" yaml:"value"`
}

// JobRequest describes a simulation job to submit.
type JobRequest struct {
	// NetworkID references a network created with [Client.CreateNetwork].
	// Required.
	NetworkID string `json:"network_id"`

	// Timesteps is the number of simulation timesteps. Required.
	Timesteps int `json:"timesteps"`

	// Stimuli are the input currents to inject. May be empty.
	Stimuli []Stimulus `json:"stimuli"`

	// Learning optionally enables a plasticity rule for the run.
	Learning *LearningConfig `json:"learning,omitempty"`

	// Rewards are reward signals for reward-modulated learning.
	Rewards []Reward `json:"rewards,omitempty"`
}

// Job is a snapshot of a simulation job as reported by the server. The
// client only ever observes successive snapshots; all mutation is server
// side.
type Job struct {
	JobID     string `json:"job_id"`
	NetworkID string `json:"network_id,omitempty"`
	Status    string `json:"status"`
	Timesteps int    `json:"timesteps,omitempty"`

	// Result is populated once Status is "completed".
	Result *JobResult `json:"result,omitempty"`

	// ComputeSeconds is the compute time billed for the run.
	ComputeSeconds float64 `json:"compute_seconds,omitempty"`

	// ErrorMessage carries the failure reason when Status is "failed".
	// Some server builds report it as "reason"; see [Job.FailureReason].
	ErrorMessage string `json:"error_message,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

// Terminal reports whether the job has reached a status from which no
// further transition occurs.
func (j *Job) Terminal() bool {
	return j.Status == JobCompleted || j.Status == JobFailed
}

// Completed reports whether the job finished successfully.
func (j *Job) Completed() bool {
	return j.Status == JobCompleted
}

// FailureReason returns the server-provided failure reason for a failed
// job, or "" if none was reported.
func (j *Job) FailureReason() string {
	if j.ErrorMessage != "" {
		return j.ErrorMessage
	}
	return j.Reason
}

// JobResult is the summary a completed job reports. All values are computed
// server side and returned verbatim.
type JobResult struct {
	// TotalSpikes is the spike count across the whole network and run.
	TotalSpikes int64 `json:"total_spikes"`

	// FiringRates maps population label to spikes-per-neuron-per-timestep.
	FiringRates map[string]float64 `json:"firing_rates"`

	// SpikeCounts is the per-timestep network spike count timeseries, when
	// the server includes it.
	SpikeCounts []int64 `json:"spike_counts,omitempty"`
}

// SpikeTrains is the full spike data for a completed job.
//
// SpikeTrains maps population label to a per-neuron slice of spike times,
// indexed by population-local neuron index. Retrieved on demand with
// [Client.GetSpikes]; never cached by the client.
type SpikeTrains struct {
	SpikeTrains map[string][][]float64 `json:"spike_trains"`
}

// NeuronCount returns the number of neurons with recorded trains for a
// population label, 0 if the label is absent.
func (s *SpikeTrains) NeuronCount(label string) int {
	return len(s.SpikeTrains[label])
}

// UsageStats is a read-only snapshot of the current billing period.
type UsageStats struct {
	Tier                string  `json:"tier,omitempty"`
	JobsToday           int     `json:"jobs_today"`
	JobsRemaining       int     `json:"jobs_remaining,omitempty"`
	ComputeSecondsToday float64 `json:"compute_seconds_today"`
	EstimatedCost       float64 `json:"estimated_cost,omitempty"`
}
