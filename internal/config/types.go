package config

// Config is the root of the monitored topology.
type Config struct {
	Probe ProbeConfig `toml:"probe"`
}

// ProbeConfig holds the ordered list of monitored services.
type ProbeConfig struct {
	Service []Service `toml:"service" validate:"dive"`
}

// Service is a top-level monitored unit. It owns nodes directly and/or
// through groups.
type Service struct {
	ID    string  `toml:"id"`
	Label string  `toml:"label,omitempty"`
	Node  []Node  `toml:"node,omitempty" validate:"dive"`
	Group []Group `toml:"group,omitempty" validate:"dive"`
}

// Group is an intermediate grouping of nodes within a service.
type Group struct {
	ID    string `toml:"id"`
	Label string `toml:"label,omitempty"`
	Node  []Node `toml:"node" validate:"dive"`
}

// NodeMode defines how a node is probed.
type NodeMode string

// Node probe modes.
const (
	NodeModePoll   NodeMode = "poll"
	NodeModePush   NodeMode = "push"
	NodeModeScript NodeMode = "script"
	NodeModeLocal  NodeMode = "local"
)

// Node is a single probe target. Apart from ID and Mode, its fields are
// consumed by the probing engine and are not interpreted here.
type Node struct {
	ID                          string            `toml:"id"`
	Label                       string            `toml:"label,omitempty"`
	Mode                        NodeMode          `toml:"mode,omitempty" validate:"omitempty,oneof=poll push script local"`
	Replicas                    []string          `toml:"replicas,omitempty"`
	Scripts                     []string          `toml:"scripts,omitempty"`
	HTTPHeaders                 map[string]string `toml:"http_headers,omitempty"`
	HTTPMethod                  string            `toml:"http_method,omitempty"`
	HTTPBody                    string            `toml:"http_body,omitempty"`
	HTTPBodyHealthyMatch        string            `toml:"http_body_healthy_match,omitempty"`
	RevealReplicaName           bool              `toml:"reveal_replica_name,omitempty"`
	LinkURL                     string            `toml:"link_url,omitempty"`
	LinkLabel                   string            `toml:"link_label,omitempty"`
	RabbitMQQueue               string            `toml:"rabbitmq_queue,omitempty"`
	RabbitMQQueueNackDeadLetter string            `toml:"rabbitmq_queue_nack_dead_letter,omitempty"`
}

// Stats summarizes the size of a topology.
type Stats struct {
	Services     int
	Groups       int
	ServiceNodes int
	GroupNodes   int
}

// Nodes returns the total number of nodes, direct and grouped.
func (s Stats) Nodes() int {
	return s.ServiceNodes + s.GroupNodes
}

// Stats counts the entities of the configuration.
func (c *Config) Stats() Stats {
	var s Stats
	if c == nil {
		return s
	}

	s.Services = len(c.Probe.Service)
	for i := range c.Probe.Service {
		svc := &c.Probe.Service[i]
		s.ServiceNodes += len(svc.Node)
		s.Groups += len(svc.Group)
		for j := range svc.Group {
			s.GroupNodes += len(svc.Group[j].Node)
		}
	}

	return s
}

// FindService returns the service with the given id.
func (p *ProbeConfig) FindService(id string) (*Service, bool) {
	for i := range p.Service {
		if p.Service[i].ID == id {
			return &p.Service[i], true
		}
	}
	return nil, false
}

// FindNode returns the node owned directly by the service. Nodes inside
// groups are not considered.
func (s *Service) FindNode(id string) (*Node, bool) {
	return findNode(s.Node, id)
}

// FindGroup returns the group with the given id.
func (s *Service) FindGroup(id string) (*Group, bool) {
	for i := range s.Group {
		if s.Group[i].ID == id {
			return &s.Group[i], true
		}
	}
	return nil, false
}

// FindNode returns the node with the given id within the group.
func (g *Group) FindNode(id string) (*Node, bool) {
	return findNode(g.Node, id)
}

func findNode(nodes []Node, id string) (*Node, bool) {
	for i := range nodes {
		if nodes[i].ID == id {
			return &nodes[i], true
		}
	}
	return nil, false
}
