package ethereum

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const traderABIJSON = `[
	{"type":"function","name":"getAmountOut","stateMutability":"nonpayable",
	 "inputs":[{"name":"tokenIn","type":"address"},{"name":"tokenOut","type":"address"},{"name":"amountIn","type":"uint256"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"buyToken","stateMutability":"payable",
	 "inputs":[{"name":"tokenAddress","type":"address"},{"name":"slippageBps","type":"uint256"}],
	 "outputs":[]},
	{"type":"function","name":"sellToken","stateMutability":"payable",
	 "inputs":[{"name":"tokenAddress","type":"address"},{"name":"tokenAmount","type":"uint256"},{"name":"slippageBps","type":"uint256"},
	           {"name":"deadline","type":"uint256"},{"name":"v","type":"uint8"},{"name":"r","type":"bytes32"},{"name":"s","type":"bytes32"}],
	 "outputs":[]},
	{"type":"event","name":"TokenBought","anonymous":false,
	 "inputs":[{"name":"token","type":"address","indexed":true},{"name":"buyer","type":"address","indexed":true},
	           {"name":"ethIn","type":"uint256","indexed":false},{"name":"tokensOut","type":"uint256","indexed":false}]},
	{"type":"event","name":"TokenSold","anonymous":false,
	 "inputs":[{"name":"token","type":"address","indexed":true},{"name":"seller","type":"address","indexed":true},
	           {"name":"tokensIn","type":"uint256","indexed":false},{"name":"ethOut","type":"uint256","indexed":false}]}
]`

const factoryABIJSON = `[
	{"type":"function","name":"collectFees","stateMutability":"nonpayable",
	 "inputs":[{"name":"tokenAddress","type":"address"}],"outputs":[]},
	{"type":"function","name":"createTokenAndPool","stateMutability":"payable",
	 "inputs":[{"name":"name","type":"string"},{"name":"symbol","type":"string"},{"name":"tokenURI","type":"string"}],
	 "outputs":[{"name":"tokenAddress","type":"address"},{"name":"poolAddress","type":"address"}]},
	{"type":"event","name":"FeesCollected","anonymous":false,
	 "inputs":[{"name":"token","type":"address","indexed":true},{"name":"creator","type":"address","indexed":true},
	           {"name":"ethFees","type":"uint256","indexed":false},{"name":"tokenFees","type":"uint256","indexed":false}]},
	{"type":"event","name":"TokenCreated","anonymous":false,
	 "inputs":[{"name":"token","type":"address","indexed":true},{"name":"creator","type":"address","indexed":true},
	           {"name":"name","type":"string","indexed":false},{"name":"symbol","type":"string","indexed":false},
	           {"name":"pool","type":"address","indexed":true},{"name":"positionId","type":"uint256","indexed":false}]}
]`

const erc20ABIJSON = `[
	{"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view",
	 "inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"nonces","stateMutability":"view",
	 "inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]}
]`

var (
	TraderABI  = mustParseABI(traderABIJSON)
	FactoryABI = mustParseABI(factoryABIJSON)
	ERC20ABI   = mustParseABI(erc20ABIJSON)
)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("parse abi: %v", err))
	}
	return parsed
}
