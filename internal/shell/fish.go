package shell

const FishScript = `# gitpr shell integration for fish

function gitpr
    # Fresh empty signal file per invocation: no two runs share state,
    # and a crashed run can never leave a stale path behind.
    set -l tmpdir /tmp
    if set -q TMPDIR
        set tmpdir $TMPDIR
    end
    set -l signal_file (mktemp "$tmpdir/git-pull-request-chdir.XXXXXX")
    or return 1

    GITPR_CHDIR_FILE=$signal_file command gitpr $argv
    set -l ret $status

    set -l target_dir (cat $signal_file 2>/dev/null | string trim)
    rm -f $signal_file

    if test -n "$target_dir"
        if test -d "$target_dir"
            cd $target_dir
        else
            echo "gitpr: cannot change directory to '$target_dir': no such directory" >&2
        end
    end

    return $ret
end

# Fish completion for gitpr
complete -c gitpr -f -n '__fish_use_subcommand' -a 'list fetch fetch-all close merge open pull submit update continue-update cu info config shell-init version'
complete -c gitpr -f -n '__fish_seen_subcommand_from config' -a 'export import'
complete -c gitpr -f -n '__fish_seen_subcommand_from shell-init' -a 'bash zsh fish'
`
