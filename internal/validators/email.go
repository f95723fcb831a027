package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid faz uma checagem barata de que o domínio do e-mail
// resolve (MX ou A). Usado só no cadastro de usuários da operação.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := strings.ToLower(email[at+1:])

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
