package iservices

var GatewayServerName = "gateway"
