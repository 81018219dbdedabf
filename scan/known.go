package scan

// data from https://www.iana.org/assignments/service-names-port-numbers/service-names-port-numbers.csv
var knownPorts = map[int]string{
	7:     "echo",
	20:    "ftp-data",
	21:    "ftp",
	22:    "ssh",
	23:    "telnet",
	25:    "smtp",
	37:    "time",
	43:    "whois",
	53:    "domain",
	67:    "dhcps",
	68:    "dhcpc",
	69:    "tftp",
	79:    "finger",
	80:    "http",
	88:    "kerberos",
	110:   "pop3",
	111:   "rpcbind",
	113:   "ident",
	119:   "nntp",
	123:   "ntp",
	135:   "msrpc",
	137:   "netbios-ns",
	138:   "netbios-dgm",
	139:   "netbios-ssn",
	143:   "imap",
	161:   "snmp",
	162:   "snmptrap",
	179:   "bgp",
	194:   "irc",
	389:   "ldap",
	443:   "https",
	445:   "microsoft-ds",
	465:   "smtps",
	500:   "isakmp",
	514:   "syslog",
	515:   "printer",
	543:   "klogin",
	554:   "rtsp",
	587:   "submission",
	631:   "ipp",
	636:   "ldaps",
	873:   "rsync",
	902:   "vmware-auth",
	989:   "ftps-data",
	990:   "ftps",
	993:   "imaps",
	995:   "pop3s",
	1025:  "blackjack",
	1080:  "socks",
	1194:  "openvpn",
	1433:  "ms-sql-s",
	1521:  "oracle",
	1723:  "pptp",
	1883:  "mqtt",
	2049:  "nfs",
	2181:  "zookeeper",
	2375:  "docker",
	2379:  "etcd-client",
	3128:  "squid-http",
	3306:  "mysql",
	3389:  "ms-wbt-server",
	4369:  "epmd",
	5060:  "sip",
	5222:  "xmpp-client",
	5432:  "postgresql",
	5672:  "amqp",
	5900:  "vnc",
	5984:  "couchdb",
	6379:  "redis",
	6443:  "kube-apiserver",
	6667:  "irc",
	7001:  "weblogic",
	8080:  "http-proxy",
	8443:  "https-alt",
	8888:  "http-alt",
	9000:  "cslistener",
	9090:  "websm",
	9092:  "kafka",
	9200:  "elasticsearch",
	11211: "memcached",
	27017: "mongodb",
}
