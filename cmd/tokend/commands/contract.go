package commands

import (
	"fmt"
	"strings"

	"github.com/coschain/cobra"
	"github.com/coschain/mide-token/common"
)

var sender string

func addSenderFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&sender, "sender", "s", "", "account sending the message")
	_ = cmd.MarkFlagRequired("sender")
}

var InstantiateCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instantiate <json_of_instantiate_msg>",
		Short: "create a token contract",
		Example: strings.Join([]string{
			`instantiate -s creator '{"name":"Mide Token","symbol":"MIDE","decimals":6,"initial_balances":[{"address":"alice","amount":"1000"}],"mint":{"minter":"alice"}}'`,
		}, "\n"),
		Args: cobra.ExactArgs(1),
		Run:  instantiate,
	}
	addSenderFlag(cmd)
	return cmd
}

func requireSender() bool {
	if sender == "" {
		fmt.Println("failed: --sender is required")
		return false
	}
	return true
}

func instantiate(cmd *cobra.Command, args []string) {
	if !requireSender() {
		return
	}
	addr, res, err := hostOf(cmd).Instantiate(sender, []byte(args[0]))
	if err != nil {
		fmt.Println("failed:", err.Error())
		return
	}
	fmt.Println("contract:", addr)
	fmt.Println(common.JSONString(res))
}

var ExecuteCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute <contract> <json_of_execute_msg>",
		Short: "execute a token command",
		Example: strings.Join([]string{
			`execute -s alice contract0 '{"transfer":{"recipient":"bob","amount":"10"}}'`,
			`execute -s alice contract0 '{"increase_allowance":{"spender":"bob","amount":"50","expires":{"at_height":1000}}}'`,
		}, "\n"),
		Args: cobra.ExactArgs(2),
		Run:  execute,
	}
	addSenderFlag(cmd)
	return cmd
}

func execute(cmd *cobra.Command, args []string) {
	if !requireSender() {
		return
	}
	res, err := hostOf(cmd).Execute(args[0], sender, []byte(args[1]))
	if err != nil {
		fmt.Println("failed:", err.Error())
		return
	}
	fmt.Println(common.JSONString(res))
}

var QueryCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <contract> <json_of_query_msg>",
		Short: "query token state",
		Example: strings.Join([]string{
			`query contract0 '{"balance":{"address":"alice"}}'`,
			`query contract0 '{"all_accounts":{"limit":5}}'`,
		}, "\n"),
		Args: cobra.ExactArgs(2),
		Run:  query,
	}
	return cmd
}

func query(cmd *cobra.Command, args []string) {
	data, err := hostOf(cmd).Query(args[0], []byte(args[1]))
	if err != nil {
		fmt.Println("failed:", err.Error())
		return
	}
	fmt.Println(common.PrettyJSON(data))
}

var MigrateCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate <contract> [json_of_migrate_msg]",
		Short: "run the migration entry point",
		Args:  cobra.RangeArgs(1, 2),
		Run:   migrate,
	}
	return cmd
}

func migrate(cmd *cobra.Command, args []string) {
	msg := "{}"
	if len(args) > 1 {
		msg = args[1]
	}
	res, err := hostOf(cmd).Migrate(args[0], []byte(msg))
	if err != nil {
		fmt.Println("failed:", err.Error())
		return
	}
	fmt.Println(common.JSONString(res))
}

var InfoCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <contract>",
		Short: "show the name and version recorded by a contract",
		Args:  cobra.ExactArgs(1),
		Run:   info,
	}
	return cmd
}

func info(cmd *cobra.Command, args []string) {
	ver, err := hostOf(cmd).ContractVersion(args[0])
	if err != nil {
		fmt.Println("failed:", err.Error())
		return
	}
	fmt.Println(common.JSONString(ver))
}

var ListCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list contracts and the last block",
		Args:  cobra.NoArgs,
		Run:   list,
	}
	return cmd
}

func list(cmd *cobra.Command, args []string) {
	host := hostOf(cmd)
	contracts, err := host.Contracts()
	if err != nil {
		fmt.Println("failed:", err.Error())
		return
	}
	fmt.Println(common.JSONString(host.Block()))
	for _, c := range contracts {
		fmt.Println(c)
	}
}
