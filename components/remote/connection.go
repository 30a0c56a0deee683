package remote

import (
	"errors"

	"github.com/inventreats/infra-definitions/common/utils"

	"github.com/pulumi/pulumi-command/sdk/go/command/remote"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

const (
	defaultSSHPort        = 22
	perDialTimeoutSeconds = 5
	dialErrorLimit        = 100
)

type connectionArgs struct {
	privateKey         pulumi.StringInput
	privateKeyPath     string
	privateKeyPassword string
	sshAgentPath       string
	port               int
}

type ConnectionOption func(*connectionArgs) error

// WithPrivateKey uses an in-memory private key, for instance one generated by
// the tls provider.
func WithPrivateKey(privateKey pulumi.StringInput) ConnectionOption {
	return func(args *connectionArgs) error {
		args.privateKey = privateKey
		return nil
	}
}

func WithPrivateKeyPath(path string) ConnectionOption {
	return func(args *connectionArgs) error {
		args.privateKeyPath = path
		return nil
	}
}

func WithPrivateKeyPassword(password string) ConnectionOption {
	return func(args *connectionArgs) error {
		args.privateKeyPassword = password
		return nil
	}
}

func WithSSHAgentPath(path string) ConnectionOption {
	return func(args *connectionArgs) error {
		args.sshAgentPath = path
		return nil
	}
}

func WithPort(port int) ConnectionOption {
	return func(args *connectionArgs) error {
		args.port = port
		return nil
	}
}

// NewConnection creates a remote connection to a host.
// Host and user are mandatory.
func NewConnection(host pulumi.StringInput, user string, options ...ConnectionOption) (*remote.ConnectionArgs, error) {
	if host == nil {
		return nil, errors.New("connection host is mandatory")
	}
	if user == "" {
		return nil, errors.New("connection user is mandatory")
	}

	args := &connectionArgs{port: defaultSSHPort}
	for _, opt := range options {
		if err := opt(args); err != nil {
			return nil, err
		}
	}

	conn := &remote.ConnectionArgs{
		Host:           host,
		User:           pulumi.String(user),
		PerDialTimeout: pulumi.IntPtr(perDialTimeoutSeconds),
		DialErrorLimit: pulumi.IntPtr(dialErrorLimit),
		Port:           pulumi.Float64Ptr(float64(args.port)),
	}

	if args.privateKey != nil {
		conn.PrivateKey = args.privateKey
	} else if args.privateKeyPath != "" {
		privateKey, err := utils.ReadSecretFile(args.privateKeyPath)
		if err != nil {
			return nil, err
		}

		conn.PrivateKey = privateKey
	}

	if args.privateKeyPassword != "" {
		conn.PrivateKeyPassword = pulumi.StringPtr(args.privateKeyPassword)
	}

	if args.sshAgentPath != "" {
		conn.AgentSocketPath = pulumi.StringPtr(args.sshAgentPath)
	}

	return conn, nil
}
