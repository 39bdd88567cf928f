package ocean

// SSH keys live under the account namespace.
const sshKeysSegment = "keys"

// SSHKey is a public key registered on the account.
type SSHKey struct {
	ID          int    `json:"id"`
	Fingerprint string `json:"fingerprint"`
	PublicKey   string `json:"public_key"`
	Name        string `json:"name"`
}

func (SSHKey) responseKey() string { return "ssh_key" }

// SSHKeys is a collection of registered public keys.
type SSHKeys []SSHKey

func (SSHKeys) responseKey() string { return "ssh_keys" }

// ListSSHKeys builds a request for all keys on the account.
func ListSSHKeys() *Request[List, SSHKeys] {
	return newRequest[List, SSHKeys](accountSegment, sshKeysSegment)
}

// CreateSSHKey builds a request registering a public key under the given
// name.
func CreateSSHKey(name, publicKey string) *Request[Create, SSHKey] {
	req := newRequest[Create, SSHKey](accountSegment, sshKeysSegment)
	req.SetBody(map[string]interface{}{
		"name":       name,
		"public_key": publicKey,
	})

	return req
}

// GetSSHKey identifies a single key by id or fingerprint.
func GetSSHKey(id string) SSHKeyRequest {
	return SSHKeyRequest{req: newRequest[Get, SSHKey](accountSegment, sshKeysSegment, id)}
}

// SSHKeyRequest is an identified-key request.
type SSHKeyRequest struct {
	req *Request[Get, SSHKey]
}

// Req returns the underlying fetch request for the identified key.
func (s SSHKeyRequest) Req() *Request[Get, SSHKey] {
	return s.req
}

// Update builds a request renaming this key.
func (s SSHKeyRequest) Update(name string) *Request[Update, SSHKey] {
	req := transmute[Update, SSHKey](s.req)
	req.SetBody(map[string]interface{}{"name": name})

	return req
}

// Delete builds a request removing this key from the account.
func (s SSHKeyRequest) Delete() *Request[Delete, Empty] {
	return transmute[Delete, Empty](s.req)
}
